package entities

// ToolSlug identifies one of the four lead-generation flows.

type ToolSlug string

const (
	ToolIdeaLab       ToolSlug = "idea-lab"
	ToolAIAnalyzer    ToolSlug = "ai-analyzer"
	ToolGetEstimate   ToolSlug = "get-estimate"
	ToolROICalculator ToolSlug = "roi-calculator"
)

// KnownTool reports whether slug names one of the four tools.
func KnownTool(slug ToolSlug) bool {
	switch slug {
	case ToolIdeaLab, ToolAIAnalyzer, ToolGetEstimate, ToolROICalculator:
		return true
	}
	return false
}

// NudgeVariant styles a cross-sell prompt.

type NudgeVariant string

const (
	NudgeSuccess NudgeVariant = "success"
	NudgeCaution NudgeVariant = "caution"
	NudgeInfo    NudgeVariant = "info"
	NudgeUrgent  NudgeVariant = "urgent"
)

// EvaluatedNudge is the runtime projection of a nudge rule whose condition
// held for a given result payload. MessageKey and CtaKey are translation
// lookup keys; the engine never embeds user-facing text. Created fresh on
// every evaluation, never mutated, never persisted (dismissal state lives
// client-side, keyed by ID).
type EvaluatedNudge struct {
	ID         string       `json:"id"`
	Variant    NudgeVariant `json:"variant"`
	MessageKey string       `json:"messageKey"`
	CtaKey     string       `json:"ctaKey"`
	TargetHref string       `json:"targetHref"`
	TargetTool ToolSlug     `json:"targetTool,omitempty"`
	Icon       string       `json:"icon"`
}
