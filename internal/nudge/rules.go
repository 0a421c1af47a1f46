package nudge

import (
	"fmt"

	"aviniti_tools/internal/domain/entities"
)

// Rule is a static cross-sell rule scoped to one source tool. Lower priority
// number means more urgent; ties resolve by declaration order.
type Rule struct {
	ID         string
	Priority   int
	Tool       entities.ToolSlug
	Condition  Condition
	Variant    entities.NudgeVariant
	MessageKey string
	CtaKey     string
	TargetHref string
	TargetTool entities.ToolSlug
	Icon       string
}

// rules is the documented behavior contract of the nudge engine. All
// numeric boundaries are exclusive as written.
var rules = []Rule{
	// ai-analyzer: strong score, push toward an estimate.
	{
		ID:         "analyzer-high-score",
		Priority:   1,
		Tool:       entities.ToolAIAnalyzer,
		Condition:  Condition{Path: "overallScore", Op: OpGreaterThan, Threshold: 70},
		Variant:    entities.NudgeSuccess,
		MessageKey: "nudges.analyzer.high_score",
		CtaKey:     "nudges.analyzer.high_score_cta",
		TargetHref: "/get-estimate",
		TargetTool: entities.ToolGetEstimate,
		Icon:       "TrendingUp",
	},
	// ai-analyzer: weak score, back to the idea lab.
	{
		ID:         "analyzer-low-score",
		Priority:   2,
		Tool:       entities.ToolAIAnalyzer,
		Condition:  Condition{Path: "overallScore", Op: OpLessThan, Threshold: 50},
		Variant:    entities.NudgeCaution,
		MessageKey: "nudges.analyzer.low_score",
		CtaKey:     "nudges.analyzer.low_score_cta",
		TargetHref: "/idea-lab",
		TargetTool: entities.ToolIdeaLab,
		Icon:       "AlertTriangle",
	},
	// ai-analyzer: crowded market, move fast on an estimate.
	{
		ID:         "analyzer-high-competition",
		Priority:   3,
		Tool:       entities.ToolAIAnalyzer,
		Condition:  Condition{Path: "categories.competition.intensity", Op: OpOneOf, Values: []string{"high", "very-high"}},
		Variant:    entities.NudgeInfo,
		MessageKey: "nudges.analyzer.high_competition",
		CtaKey:     "nudges.analyzer.high_competition_cta",
		TargetHref: "/get-estimate",
		TargetTool: entities.ToolGetEstimate,
		Icon:       "Info",
	},
	// get-estimate: large budget, justify it with an ROI run.
	{
		ID:         "estimate-high-cost",
		Priority:   1,
		Tool:       entities.ToolGetEstimate,
		Condition:  Condition{Path: "pricing.total", Op: OpGreaterThan, Threshold: 15000},
		Variant:    entities.NudgeCaution,
		MessageKey: "nudges.estimate.high_cost",
		CtaKey:     "nudges.estimate.high_cost_cta",
		TargetHref: "/roi-calculator",
		TargetTool: entities.ToolROICalculator,
		Icon:       "AlertTriangle",
	},
	// get-estimate: a ready-made solution covers most of the idea.
	{
		ID:         "estimate-matched-solution",
		Priority:   2,
		Tool:       entities.ToolGetEstimate,
		Condition:  Condition{Path: "matchedSolution.matchPercentage", Op: OpGreaterThan, Threshold: 60},
		Variant:    entities.NudgeSuccess,
		MessageKey: "nudges.estimate.matched_solution",
		CtaKey:     "nudges.estimate.matched_solution_cta",
		TargetHref: "/solutions",
		Icon:       "TrendingUp",
	},
	// roi-calculator: payback under a year, book a call now.
	{
		ID:         "roi-fast-payback",
		Priority:   1,
		Tool:       entities.ToolROICalculator,
		Condition:  Condition{Path: "paybackPeriodMonths.moderate", Op: OpLessThan, Threshold: 12},
		Variant:    entities.NudgeUrgent,
		MessageKey: "nudges.roi.fast_payback",
		CtaKey:     "nudges.roi.fast_payback_cta",
		TargetHref: "/contact",
		Icon:       "Zap",
	},
	// roi-calculator: strong three-year return.
	{
		ID:         "roi-strong-roi",
		Priority:   2,
		Tool:       entities.ToolROICalculator,
		Condition:  Condition{Path: "threeYearROI.percentage", Op: OpGreaterThan, Threshold: 200},
		Variant:    entities.NudgeSuccess,
		MessageKey: "nudges.roi.strong_roi",
		CtaKey:     "nudges.roi.strong_roi_cta",
		TargetHref: "/get-estimate",
		TargetTool: entities.ToolGetEstimate,
		Icon:       "TrendingUp",
	},
	// roi-calculator: slow payback, revisit the scope.
	{
		ID:         "roi-slow-payback",
		Priority:   3,
		Tool:       entities.ToolROICalculator,
		Condition:  Condition{Path: "paybackPeriodMonths.moderate", Op: OpGreaterThan, Threshold: 24},
		Variant:    entities.NudgeCaution,
		MessageKey: "nudges.roi.slow_payback",
		CtaKey:     "nudges.roi.slow_payback_cta",
		TargetHref: "/get-estimate",
		TargetTool: entities.ToolGetEstimate,
		Icon:       "AlertTriangle",
	},
}

func init() {
	if err := validateRules(rules); err != nil {
		panic(err)
	}
}

// Rules returns the static rule table in declaration order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// validateRules enforces the rule table's well-formedness at load time:
// globally unique ids, each rule scoped to exactly one known tool, a known
// comparator, and the operand shape its comparator needs.
func validateRules(rs []Rule) error {
	seen := make(map[string]bool, len(rs))
	for _, r := range rs {
		if r.ID == "" {
			return fmt.Errorf("nudge: rule with empty id")
		}
		if seen[r.ID] {
			return fmt.Errorf("nudge: duplicate rule id %q", r.ID)
		}
		seen[r.ID] = true

		if !entities.KnownTool(r.Tool) {
			return fmt.Errorf("nudge: rule %q has unknown tool %q", r.ID, r.Tool)
		}
		if r.TargetTool != "" && !entities.KnownTool(r.TargetTool) {
			return fmt.Errorf("nudge: rule %q has unknown target tool %q", r.ID, r.TargetTool)
		}
		if r.Condition.Path == "" {
			return fmt.Errorf("nudge: rule %q has empty condition path", r.ID)
		}
		switch r.Condition.Op {
		case OpGreaterThan, OpLessThan:
		case OpOneOf:
			if len(r.Condition.Values) == 0 {
				return fmt.Errorf("nudge: rule %q has one-of condition without values", r.ID)
			}
		default:
			return fmt.Errorf("nudge: rule %q has unknown op %q", r.ID, r.Condition.Op)
		}
	}
	return nil
}
