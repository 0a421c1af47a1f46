package response

import (
	"aviniti_tools/internal/domain/entities"
)

type FeatureResponse struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	Price        int    `json:"price"`
	TimelineDays int    `json:"timelineDays"`
	Complexity   string `json:"complexity"`
}

type FeatureListResponse struct {
	Features []FeatureResponse `json:"features"`
}

func FromFeatures(features []entities.CatalogFeature) FeatureListResponse {
	out := make([]FeatureResponse, 0, len(features))
	for _, f := range features {
		out = append(out, FeatureResponse{
			ID:           f.ID,
			CategoryID:   f.CategoryID,
			Price:        f.Price,
			TimelineDays: f.TimelineDays,
			Complexity:   string(f.Complexity),
		})
	}
	return FeatureListResponse{Features: out}
}

type CategoryResponse struct {
	ID      string `json:"id"`
	NameKey string `json:"nameKey"`
	Icon    string `json:"icon"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func FromCategories(categories []entities.FeatureCategory) CategoryListResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, NameKey: c.NameKey, Icon: c.Icon})
	}
	return CategoryListResponse{Categories: out}
}
