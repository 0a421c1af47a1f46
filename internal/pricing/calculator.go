// Package pricing computes deterministic cost and timeline breakdowns from
// the feature catalog. No AI involved, no randomness, no time dependence:
// the same feature selection always yields byte-identical results. This is
// the guarantee that lets the product say "AI does not set costs".
package pricing

import (
	"math"

	"aviniti_tools/internal/catalog"
	"aviniti_tools/internal/domain/entities"
)

// Policy constants. Kept as named values with documented units so the
// algorithm stays auditable and tunable without touching control flow.
const (
	// DesignSurchargeRate is the fixed design add-on, as a fraction of the
	// feature subtotal.
	DesignSurchargeRate = 0.20

	// TimelineParallelizationFactor scales the naive sum of per-feature
	// timeline days. Teams work features concurrently, so the plain sum
	// overstates duration.
	TimelineParallelizationFactor = 0.7

	// Currency for every figure produced here.
	Currency = "USD"
)

// Bundle discount tiers: larger selections earn a percentage off the subtotal.
const (
	discountTier1Count = 10
	discountTier2Count = 20
	discountTier3Count = 30

	discountTier1Rate = 0.10
	discountTier2Rate = 0.15
	discountTier3Rate = 0.20
)

// PhaseRatio binds a delivery-phase key to its share of the total cost.
type PhaseRatio struct {
	Key   string
	Ratio float64
}

// PhaseCostRatios distributes the total across the fixed delivery phases, in
// order. The ratios sum to 1.0.
var PhaseCostRatios = []PhaseRatio{
	{Key: "discovery", Ratio: 0.08},
	{Key: "design", Ratio: 0.15},
	{Key: "backend", Ratio: 0.30},
	{Key: "frontend", Ratio: 0.25},
	{Key: "testing", Ratio: 0.12},
	{Key: "launch", Ratio: 0.10},
}

func bundleDiscountRate(featureCount int) float64 {
	switch {
	case featureCount >= discountTier3Count:
		return discountTier3Rate
	case featureCount >= discountTier2Count:
		return discountTier2Rate
	case featureCount >= discountTier1Count:
		return discountTier1Rate
	}
	return 0
}

// CalculateEstimate turns a feature-id selection into a cost breakdown.
//
// Duplicate ids are collapsed, first occurrence wins. Ids with no catalog
// entry are excluded entirely: this calculator produces the money figure shown
// to the user, so it must never include a feature it cannot price (request
// validation above rejects unknown ids outright; the exclusion here is the
// backstop).
func CalculateEstimate(featureIDs []string) entities.PricingResult {
	features := make([]entities.PricedFeature, 0, len(featureIDs))
	seen := make(map[string]bool, len(featureIDs))

	for _, id := range featureIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		cf := catalog.GetFeatureByID(id)
		if cf == nil {
			continue
		}
		features = append(features, entities.PricedFeature{
			CatalogID:    cf.ID,
			Name:         cf.ID, // resolved to an i18n name on the client
			CategoryID:   cf.CategoryID,
			Price:        cf.Price,
			TimelineDays: cf.TimelineDays,
			Complexity:   cf.Complexity,
		})
	}

	subtotal := 0
	timelineSum := 0
	longestFeature := 0
	for _, f := range features {
		subtotal += f.Price
		timelineSum += f.TimelineDays
		if f.TimelineDays > longestFeature {
			longestFeature = f.TimelineDays
		}
	}

	designSurcharge := int(math.Round(float64(subtotal) * DesignSurchargeRate))

	discountRate := bundleDiscountRate(len(features))
	bundleDiscount := int(math.Round(float64(subtotal) * discountRate))

	total := subtotal + designSurcharge - bundleDiscount
	if total < 0 {
		total = 0
	}

	return entities.PricingResult{
		Features:              features,
		Subtotal:              subtotal,
		DesignSurcharge:       designSurcharge,
		BundleDiscount:        bundleDiscount,
		BundleDiscountPercent: discountRate,
		Total:                 total,
		TotalTimelineDays:     parallelizedTimeline(timelineSum, longestFeature),
		Currency:              Currency,
	}
}

// parallelizedTimeline applies the parallelization factor to the summed
// per-feature days, rounding up, floored at the single longest feature: a
// project can never finish before its longest feature does.
func parallelizedTimeline(timelineSum, longestFeature int) int {
	days := int(math.Ceil(float64(timelineSum) * TimelineParallelizationFactor))
	if days < longestFeature {
		days = longestFeature
	}
	return days
}

// NextDiscountThreshold reports how many more features unlock the next bundle
// discount tier, for the running-total bar. Returns nil at the top tier.
func NextDiscountThreshold(currentCount int) *entities.DiscountThreshold {
	switch {
	case currentCount < discountTier1Count:
		return &entities.DiscountThreshold{Needed: discountTier1Count - currentCount, NextPercent: 10}
	case currentCount < discountTier2Count:
		return &entities.DiscountThreshold{Needed: discountTier2Count - currentCount, NextPercent: 15}
	case currentCount < discountTier3Count:
		return &entities.DiscountThreshold{Needed: discountTier3Count - currentCount, NextPercent: 20}
	}
	return nil
}

// DistributeAcrossPhases splits total across the fixed delivery phases using
// PhaseCostRatios. The last phase absorbs the rounding remainder so the
// shares always sum back to total exactly.
func DistributeAcrossPhases(total int) map[string]int {
	result := make(map[string]int, len(PhaseCostRatios))
	distributed := 0

	for i, pr := range PhaseCostRatios {
		if i == len(PhaseCostRatios)-1 {
			result[pr.Key] = total - distributed
			break
		}
		amount := int(math.Round(float64(total) * pr.Ratio))
		result[pr.Key] = amount
		distributed += amount
	}
	return result
}
