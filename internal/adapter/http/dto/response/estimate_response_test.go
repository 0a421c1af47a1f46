package response

import (
	"encoding/json"
	"strings"
	"testing"

	"aviniti_tools/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	e := entities.EstimateResponse{
		ProjectName:   "OrderFlow",
		EstimatedCost: entities.CostRange{Min: 480, Max: 480, Currency: "USD"},
		Pricing:       entities.PricingResult{Total: 480, Currency: "USD"},
	}

	res := FromEstimate(e)
	if res.ProjectName != "OrderFlow" || res.Pricing.Total != 480 {
		t.Fatalf("unexpected response: %+v", res)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"estimatedCost"`) {
		t.Fatalf("expected camelCase wire fields, got %s", b)
	}
}

func TestFromPricing(t *testing.T) {
	p := entities.PricingResult{Subtotal: 400, DesignSurcharge: 80, Total: 480, Currency: "USD"}
	next := &entities.DiscountThreshold{Needed: 9, NextPercent: 10}

	res := FromPricing(p, next)
	if res.Pricing.Total != 480 {
		t.Fatalf("unexpected pricing: %+v", res.Pricing)
	}
	if res.NextDiscount == nil || res.NextDiscount.Needed != 9 {
		t.Fatalf("unexpected next discount: %+v", res.NextDiscount)
	}

	b, err := json.Marshal(FromPricing(p, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "nextDiscount") {
		t.Fatalf("nil threshold should be omitted, got %s", b)
	}
}
