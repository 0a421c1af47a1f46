// Package transition builds the preview shown when a user moves from one tool
// to another: a couple of headline metrics plus a list of what data carries
// forward. The source tool may have stored anything or nothing; every field
// degrades to a placeholder instead of erroring.
package transition

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/i18n"
)

// Placeholder is rendered for any metric whose underlying data is absent,
// empty or the wrong type.
const Placeholder = "—"

var moneyPrinter = message.NewPrinter(language.English)

// GetTransitionMetrics resolves the preview for a (fromTool, toTool) route.
// Six ordered pairs are supported; any other pair returns empty metrics and
// carry-forward lists rather than an error.
func GetTransitionMetrics(fromTool, toTool entities.ToolSlug, sessionData map[string]any, t i18n.TranslateFunc) entities.TransitionData {
	switch {
	case fromTool == entities.ToolIdeaLab && toTool == entities.ToolGetEstimate:
		return entities.TransitionData{
			Metrics: []entities.TransitionMetric{
				{Label: t("tool_transition.metrics.idea_name"), Value: stringOrPlaceholder(sessionData, "ideaName")},
				{Label: t("tool_transition.metrics.features_count"), Value: countOrPlaceholder(sessionData, "features")},
			},
			CarryForwardItems: []string{
				t("tool_transition.carry.idea_description"),
				t("tool_transition.carry.feature_list"),
				t("tool_transition.carry.benefits"),
			},
		}

	case fromTool == entities.ToolIdeaLab && toTool == entities.ToolROICalculator:
		return entities.TransitionData{
			Metrics: []entities.TransitionMetric{
				{Label: t("tool_transition.metrics.idea_name"), Value: stringOrPlaceholder(sessionData, "ideaName")},
				{Label: t("tool_transition.metrics.features_count"), Value: countOrPlaceholder(sessionData, "features")},
			},
			CarryForwardItems: []string{
				t("tool_transition.carry.idea_description"),
				t("tool_transition.carry.benefits"),
				t("tool_transition.carry.impact_metrics"),
			},
		}

	case fromTool == entities.ToolIdeaLab && toTool == entities.ToolAIAnalyzer:
		return entities.TransitionData{
			Metrics: []entities.TransitionMetric{
				{Label: t("tool_transition.metrics.idea_name"), Value: stringOrPlaceholder(sessionData, "ideaName")},
			},
			CarryForwardItems: []string{
				t("tool_transition.carry.idea_description"),
				t("tool_transition.carry.feature_list"),
				t("tool_transition.carry.benefits"),
			},
		}

	case fromTool == entities.ToolAIAnalyzer && toTool == entities.ToolGetEstimate:
		score := Placeholder
		if n, ok := numberAt(sessionData, "overallScore"); ok {
			score = fmt.Sprintf("%d/100", int(math.Round(n)))
		}
		return entities.TransitionData{
			Metrics: []entities.TransitionMetric{
				{Label: t("tool_transition.metrics.viability_score"), Value: score},
				{Label: t("tool_transition.metrics.complexity"), Value: stringOrPlaceholder(sessionData, "complexity")},
			},
			CarryForwardItems: []string{
				t("tool_transition.carry.original_idea"),
				t("tool_transition.carry.tech_recommendations"),
				t("tool_transition.carry.complexity_assessment"),
			},
		}

	case fromTool == entities.ToolGetEstimate && toTool == entities.ToolROICalculator:
		cost := Placeholder
		if min, okMin := numberAt(sessionData, "estimatedCost", "min"); okMin {
			if max, okMax := numberAt(sessionData, "estimatedCost", "max"); okMax {
				cost = formatMoneyRange(min, max)
			}
		}
		timeline := Placeholder
		if weeks, ok := numberAt(sessionData, "estimatedTimeline", "weeks"); ok {
			timeline = moneyPrinter.Sprintf("%d wks", int(weeks))
		}
		return entities.TransitionData{
			Metrics: []entities.TransitionMetric{
				{Label: t("tool_transition.metrics.estimated_cost"), Value: cost},
				{Label: t("tool_transition.metrics.timeline"), Value: timeline},
			},
			CarryForwardItems: []string{
				t("tool_transition.carry.cost_breakdown"),
				t("tool_transition.carry.features_selected"),
				t("tool_transition.carry.project_approach"),
			},
		}

	case fromTool == entities.ToolROICalculator && toTool == entities.ToolGetEstimate:
		roi := Placeholder
		if n, ok := numberAt(sessionData, "roiPercentage"); ok {
			roi = fmt.Sprintf("%d%%", int(math.Round(n)))
		} else if n, ok := numberAt(sessionData, "threeYearROI", "percentage"); ok {
			roi = fmt.Sprintf("%d%%", int(math.Round(n)))
		}
		payback := Placeholder
		if n, ok := numberAt(sessionData, "paybackPeriodMonths", "moderate"); ok {
			payback = fmt.Sprintf("%v mo", trimNumber(n))
		}
		return entities.TransitionData{
			Metrics: []entities.TransitionMetric{
				{Label: t("tool_transition.metrics.roi_percentage"), Value: roi},
				{Label: t("tool_transition.metrics.payback_period"), Value: payback},
			},
			CarryForwardItems: []string{
				t("tool_transition.carry.roi_analysis"),
				t("tool_transition.carry.market_opportunity"),
				t("tool_transition.carry.revenue_model"),
			},
		}
	}

	return entities.TransitionData{
		Metrics:           []entities.TransitionMetric{},
		CarryForwardItems: []string{},
	}
}

func formatMoneyRange(min, max float64) string {
	return moneyPrinter.Sprintf("$%d – $%d", int(min), int(max))
}

// stringOrPlaceholder reads a top-level string field, degrading to the
// placeholder for absent, empty or non-string values.
func stringOrPlaceholder(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok && s != "" {
		return s
	}
	return Placeholder
}

// countOrPlaceholder renders the length of a top-level array field; an absent
// array or an empty one both degrade to the placeholder.
func countOrPlaceholder(data map[string]any, key string) string {
	if items, ok := data[key].([]any); ok && len(items) > 0 {
		return fmt.Sprintf("%d", len(items))
	}
	return Placeholder
}

// numberAt reads a numeric field at the given key path, accepting the numeric
// types a JSON payload can arrive with.
func numberAt(data map[string]any, path ...string) (float64, bool) {
	var current any = data
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return 0, false
		}
		current, ok = m[key]
		if !ok {
			return 0, false
		}
	}
	switch n := current.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// trimNumber drops the fractional part when the value is integral, so "18 mo"
// renders instead of "18.0 mo".
func trimNumber(n float64) any {
	if n == math.Trunc(n) {
		return int(n)
	}
	return n
}
