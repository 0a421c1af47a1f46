package response

import (
	"testing"

	"aviniti_tools/internal/domain/entities"
)

func TestFromNudges(t *testing.T) {
	nudges := []entities.EvaluatedNudge{
		{
			ID:         "analyzer-high-score",
			Variant:    entities.NudgeSuccess,
			MessageKey: "nudges.analyzer_high_score.message",
			CtaKey:     "nudges.analyzer_high_score.cta",
			TargetHref: "/get-estimate",
			TargetTool: entities.ToolGetEstimate,
			Icon:       "sparkles",
		},
	}

	res := FromNudges(nudges)
	if len(res.Nudges) != 1 {
		t.Fatalf("expected 1 nudge, got %d", len(res.Nudges))
	}
	n := res.Nudges[0]
	if n.ID != "analyzer-high-score" || n.Variant != "success" {
		t.Fatalf("unexpected nudge: %+v", n)
	}
	if n.TargetHref != "/get-estimate" || n.TargetTool != "get-estimate" {
		t.Fatalf("unexpected target: %+v", n)
	}
}

func TestFromNudges_Empty(t *testing.T) {
	res := FromNudges(nil)
	if res.Nudges == nil {
		t.Fatal("nudges should serialize as an empty array, not null")
	}
	if len(res.Nudges) != 0 {
		t.Fatalf("expected empty, got %+v", res.Nudges)
	}
}
