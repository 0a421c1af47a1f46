package entities

// FeatureComplexity buckets a catalog feature by implementation effort.
//
// Values mirror the pricing spreadsheet the catalog was loaded from.

type FeatureComplexity string

const (
	ComplexityLow    FeatureComplexity = "Low"
	ComplexityMedium FeatureComplexity = "Medium"
	ComplexityHigh   FeatureComplexity = "High"
)

// FeatureCategory groups catalog features for browsing and prompt compression.
type FeatureCategory struct {
	ID      string `json:"id"`
	NameKey string `json:"name_key"`
	Icon    string `json:"icon"`
}

// CatalogFeature is one priced, timed unit of scope from the fixed feature
// price list. The catalog is loaded once at process start and is read-only
// thereafter.
//
// Monetary representation:
//   - Price is whole USD units from the pricing spreadsheet.
//   - TimelineDays is business days for a single team working the feature.

type CatalogFeature struct {
	ID           string            `json:"id"`
	CategoryID   string            `json:"category_id"`
	Price        int               `json:"price"`
	TimelineDays int               `json:"timeline_days"`
	Complexity   FeatureComplexity `json:"complexity"`
}
