package response

import (
	"aviniti_tools/internal/domain/entities"
)

// EstimateResponse is the reconciled estimate document returned to the web
// client. The entity already carries wire-ready field names; this wrapper
// exists so the HTTP shape can drift from the domain shape without touching
// the usecase layer.
type EstimateResponse struct {
	entities.EstimateResponse
}

func FromEstimate(e entities.EstimateResponse) EstimateResponse {
	return EstimateResponse{EstimateResponse: e}
}

// RecalculateResponse is the pricing-only reply for the feature selector.
type RecalculateResponse struct {
	Pricing      entities.PricingResult      `json:"pricing"`
	NextDiscount *entities.DiscountThreshold `json:"nextDiscount,omitempty"`
}

func FromPricing(p entities.PricingResult, next *entities.DiscountThreshold) RecalculateResponse {
	return RecalculateResponse{Pricing: p, NextDiscount: next}
}
