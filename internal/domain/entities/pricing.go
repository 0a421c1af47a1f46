package entities

// PricedFeature is a catalog feature resolved for a specific estimate request.
// Name carries the catalog id; it is resolved to a localized display name on
// the client.
type PricedFeature struct {
	CatalogID    string            `json:"catalogId"`
	Name         string            `json:"name"`
	CategoryID   string            `json:"categoryId"`
	Price        int               `json:"price"`
	TimelineDays int               `json:"timelineDays"`
	Complexity   FeatureComplexity `json:"complexity"`
}

// PricingResult is the deterministic cost breakdown for a feature selection.
//
// Invariants:
//   - Total == Subtotal + DesignSurcharge - BundleDiscount
//   - Total >= 0
//
// The result is recomputed on every request and never persisted on its own;
// it travels inside the enclosing AI submission record.

type PricingResult struct {
	Features              []PricedFeature `json:"features"`
	Subtotal              int             `json:"subtotal"`
	DesignSurcharge       int             `json:"designSurcharge"`
	BundleDiscount        int             `json:"bundleDiscount"`
	BundleDiscountPercent float64         `json:"bundleDiscountPercent"`
	Total                 int             `json:"total"`
	TotalTimelineDays     int             `json:"totalTimelineDays"`
	Currency              string          `json:"currency"`
}

// DiscountThreshold describes how many more features unlock the next bundle
// discount tier. A nil value means the selection already sits at the top tier.
type DiscountThreshold struct {
	Needed      int `json:"needed"`
	NextPercent int `json:"nextPercent"`
}
