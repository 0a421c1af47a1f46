package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func validCreativeJSON() map[string]any {
	phases := make([]map[string]any, 6)
	names := []string{"Discovery & Planning", "UI/UX Design", "Backend Development", "Frontend Development", "Testing & QA", "Deployment & Launch"}
	for i, n := range names {
		phases[i] = map[string]any{
			"phase":       i + 1,
			"name":        n,
			"description": "What happens during this phase of the project.",
			"duration":    "2 weeks",
		}
	}
	return map[string]any{
		"projectName":      "OrderFlow",
		"alternativeNames": []string{"QuickBite", "DishDash"},
		"projectSummary":   "A delivery platform connecting restaurants with customers.",
		"estimatedTimeline": map[string]any{
			"weeks":  12,
			"phases": phases,
		},
		"approach":        "custom",
		"matchedSolution": nil,
		"techStack":       []string{"Go", "React Native", "PostgreSQL"},
		"keyInsights": []string{
			"Start with a single city to validate demand.",
			"Driver onboarding will be the operational bottleneck.",
			"Payments integration adds regulatory overhead.",
		},
	}
}

func marshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestParseEstimateCreative(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		res := ParseEstimateCreative(marshal(t, validCreativeJSON()))
		if !res.Success {
			t.Fatalf("expected success, issues: %v", res.Issues)
		}
		if res.Data == nil || res.Data.ProjectName != "OrderFlow" {
			t.Fatalf("unexpected data: %+v", res.Data)
		}
		if len(res.Data.EstimatedTimeline.Phases) != 6 {
			t.Fatalf("expected 6 phases, got %d", len(res.Data.EstimatedTimeline.Phases))
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		res := ParseEstimateCreative(json.RawMessage("{not json"))
		if res.Success || res.Data != nil {
			t.Fatalf("expected failure")
		}
		if len(res.Issues) == 0 || !strings.Contains(res.Issues[0].Message, "invalid JSON") {
			t.Fatalf("unexpected issues: %v", res.Issues)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		payload := validCreativeJSON()
		payload["projectName"] = ""
		res := ParseEstimateCreative(marshal(t, payload))
		if res.Success {
			t.Fatalf("expected failure")
		}
		assertIssuePath(t, res.Issues, "projectName")
	})

	t.Run("too few phases", func(t *testing.T) {
		payload := validCreativeJSON()
		payload["estimatedTimeline"] = map[string]any{
			"weeks":  12,
			"phases": []map[string]any{},
		}
		res := ParseEstimateCreative(marshal(t, payload))
		if res.Success {
			t.Fatalf("expected failure")
		}
		assertIssuePath(t, res.Issues, "estimatedTimeline.phases")
	})

	t.Run("unknown approach", func(t *testing.T) {
		payload := validCreativeJSON()
		payload["approach"] = "magic"
		res := ParseEstimateCreative(marshal(t, payload))
		if res.Success {
			t.Fatalf("expected failure")
		}
		assertIssuePath(t, res.Issues, "approach")
	})

	t.Run("matched solution constraints", func(t *testing.T) {
		payload := validCreativeJSON()
		payload["matchedSolution"] = map[string]any{
			"slug":                   "delivery-app",
			"name":                   "Delivery App",
			"startingPrice":          0,
			"deploymentTimeline":     "35 days",
			"featureMatchPercentage": 130,
		}
		res := ParseEstimateCreative(marshal(t, payload))
		if res.Success {
			t.Fatalf("expected failure")
		}
		assertIssuePath(t, res.Issues, "matchedSolution.startingPrice")
		assertIssuePath(t, res.Issues, "matchedSolution.featureMatchPercentage")
	})

	t.Run("key insights bounds", func(t *testing.T) {
		payload := validCreativeJSON()
		payload["keyInsights"] = []string{"Only one insight here."}
		res := ParseEstimateCreative(marshal(t, payload))
		if res.Success {
			t.Fatalf("expected failure")
		}
		assertIssuePath(t, res.Issues, "keyInsights")
	})

	t.Run("collects multiple issues", func(t *testing.T) {
		payload := validCreativeJSON()
		payload["projectName"] = ""
		payload["approach"] = "magic"
		res := ParseEstimateCreative(marshal(t, payload))
		if len(res.Issues) < 2 {
			t.Fatalf("expected multiple issues, got %v", res.Issues)
		}
	})
}

func assertIssuePath(t *testing.T, issues []Issue, path string) {
	t.Helper()
	for _, i := range issues {
		if i.Path == path {
			return
		}
	}
	t.Fatalf("expected issue at %q, got %v", path, issues)
}
