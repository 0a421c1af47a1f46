package request

import (
	"strings"
)

// QuestionRequest is one answered clarifying question echoed back by the
// estimate form.
type QuestionRequest struct {
	ID       string `json:"id" binding:"required"`
	Question string `json:"question" binding:"required"`
	Context  string `json:"context"`
}

// UserInfoRequest is the optional contact block of an estimate submission.
type UserInfoRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
}

// EstimateRequest is the estimate-form payload posted by the web client.
type EstimateRequest struct {
	ProjectType      string            `json:"projectType"`
	Description      string            `json:"description" binding:"required"`
	SelectedFeatures []string          `json:"selectedFeatures" binding:"required,min=1"`
	Questions        []QuestionRequest `json:"questions"`
	Answers          map[string]bool   `json:"answers"`
	UserInfo         *UserInfoRequest  `json:"userInfo"`
	Locale           string            `json:"locale"`
}

// ResolveFeatureIDs trims and drops blank entries so downstream validation
// only ever sees candidate catalog ids.
func (r EstimateRequest) ResolveFeatureIDs() []string {
	ids := make([]string, 0, len(r.SelectedFeatures))
	for _, id := range r.SelectedFeatures {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

// RecalculateRequest reprices a feature selection without invoking the AI.
type RecalculateRequest struct {
	SelectedFeatures []string `json:"selectedFeatures" binding:"required,min=1"`
}

func (r RecalculateRequest) ResolveFeatureIDs() []string {
	ids := make([]string, 0, len(r.SelectedFeatures))
	for _, id := range r.SelectedFeatures {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}
