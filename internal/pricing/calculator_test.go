package pricing

import (
	"reflect"
	"testing"
)

func TestCalculateEstimate(t *testing.T) {
	t.Run("single feature fixture", func(t *testing.T) {
		// auth-email-password: price 400, timeline 3 days.
		res := CalculateEstimate([]string{"auth-email-password"})
		if res.Subtotal != 400 {
			t.Fatalf("expected subtotal 400, got %d", res.Subtotal)
		}
		if res.DesignSurcharge != 80 {
			t.Fatalf("expected surcharge 80, got %d", res.DesignSurcharge)
		}
		if res.BundleDiscount != 0 || res.BundleDiscountPercent != 0 {
			t.Fatalf("expected no discount, got %d (%f)", res.BundleDiscount, res.BundleDiscountPercent)
		}
		if res.Total != 480 {
			t.Fatalf("expected total 480, got %d", res.Total)
		}
		if res.TotalTimelineDays != 3 {
			t.Fatalf("expected 3 timeline days, got %d", res.TotalTimelineDays)
		}
		if res.Currency != "USD" {
			t.Fatalf("expected USD, got %s", res.Currency)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		ids := []string{"auth-email-password", "profile-basic", "nav-bottom-tabs"}
		a := CalculateEstimate(ids)
		b := CalculateEstimate(ids)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("expected identical results\nfirst:  %+v\nsecond: %+v", a, b)
		}
	})

	t.Run("duplicates do not double count", func(t *testing.T) {
		once := CalculateEstimate([]string{"auth-email-password"})
		twice := CalculateEstimate([]string{"auth-email-password", "auth-email-password"})
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("duplicate id changed the result: %+v vs %+v", once, twice)
		}
		if len(twice.Features) != 1 {
			t.Fatalf("expected 1 priced feature, got %d", len(twice.Features))
		}
	})

	t.Run("unknown ids excluded from pricing", func(t *testing.T) {
		res := CalculateEstimate([]string{"auth-email-password", "made-up-feature"})
		if res.Subtotal != 400 {
			t.Fatalf("unknown id contributed to subtotal: %d", res.Subtotal)
		}
		for _, f := range res.Features {
			if f.CatalogID == "made-up-feature" {
				t.Fatalf("unknown id present in priced feature list")
			}
		}
	})

	t.Run("invariant total equation", func(t *testing.T) {
		ids := []string{
			"auth-email-password", "auth-social-google", "auth-phone-otp",
			"profile-basic", "profile-onboarding", "nav-bottom-tabs",
			"nav-dashboard", "content-image-upload", "comm-chat-1to1",
			"auth-2fa", "auth-biometric", "profile-dark-mode",
		}
		res := CalculateEstimate(ids)
		if res.Total != res.Subtotal+res.DesignSurcharge-res.BundleDiscount {
			t.Fatalf("total equation violated: %+v", res)
		}
		if res.Total < 0 {
			t.Fatalf("negative total: %d", res.Total)
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		res := CalculateEstimate(nil)
		if res.Subtotal != 0 || res.Total != 0 || res.TotalTimelineDays != 0 {
			t.Fatalf("expected zero result, got %+v", res)
		}
		if len(res.Features) != 0 {
			t.Fatalf("expected no features, got %d", len(res.Features))
		}
	})
}

func TestBundleDiscountTiers(t *testing.T) {
	cases := []struct {
		count int
		rate  float64
	}{
		{0, 0},
		{9, 0},
		{10, 0.10},
		{19, 0.10},
		{20, 0.15},
		{29, 0.15},
		{30, 0.20},
		{50, 0.20},
	}
	for _, tc := range cases {
		if got := bundleDiscountRate(tc.count); got != tc.rate {
			t.Fatalf("count %d: expected rate %f, got %f", tc.count, tc.rate, got)
		}
	}
}

func TestParallelizedTimeline(t *testing.T) {
	t.Run("applies factor and rounds up", func(t *testing.T) {
		// 10 summed days * 0.7 = 7.
		if got := parallelizedTimeline(10, 2); got != 7 {
			t.Fatalf("expected 7, got %d", got)
		}
		// 11 * 0.7 = 7.7 -> 8.
		if got := parallelizedTimeline(11, 2); got != 8 {
			t.Fatalf("expected 8, got %d", got)
		}
	})

	t.Run("floored at longest single feature", func(t *testing.T) {
		if got := parallelizedTimeline(10, 9); got != 9 {
			t.Fatalf("expected floor 9, got %d", got)
		}
	})
}

func TestNextDiscountThreshold(t *testing.T) {
	cases := []struct {
		count   int
		needed  int
		percent int
	}{
		{0, 10, 10},
		{7, 3, 10},
		{10, 10, 15},
		{25, 5, 20},
	}
	for _, tc := range cases {
		got := NextDiscountThreshold(tc.count)
		if got == nil {
			t.Fatalf("count %d: expected threshold, got nil", tc.count)
		}
		if got.Needed != tc.needed || got.NextPercent != tc.percent {
			t.Fatalf("count %d: expected {%d %d}, got %+v", tc.count, tc.needed, tc.percent, got)
		}
	}

	if got := NextDiscountThreshold(30); got != nil {
		t.Fatalf("expected nil at top tier, got %+v", got)
	}
}

func TestDistributeAcrossPhases(t *testing.T) {
	t.Run("ratios sum to one", func(t *testing.T) {
		sum := 0.0
		for _, pr := range PhaseCostRatios {
			sum += pr.Ratio
		}
		if sum < 0.9999 || sum > 1.0001 {
			t.Fatalf("phase ratios sum to %f", sum)
		}
	})

	t.Run("shares conserve the total", func(t *testing.T) {
		for _, total := range []int{0, 1, 480, 999, 15000, 123457} {
			shares := DistributeAcrossPhases(total)
			if len(shares) != len(PhaseCostRatios) {
				t.Fatalf("expected %d shares, got %d", len(PhaseCostRatios), len(shares))
			}
			sum := 0
			for _, v := range shares {
				sum += v
			}
			if sum != total {
				t.Fatalf("total %d: shares sum to %d", total, sum)
			}
		}
	})

	t.Run("known split", func(t *testing.T) {
		shares := DistributeAcrossPhases(10000)
		want := map[string]int{
			"discovery": 800,
			"design":    1500,
			"backend":   3000,
			"frontend":  2500,
			"testing":   1200,
			"launch":    1000,
		}
		if !reflect.DeepEqual(shares, want) {
			t.Fatalf("unexpected split: %+v", shares)
		}
	})
}
