package nudge

import (
	"sort"

	"aviniti_tools/internal/domain/entities"
)

// DefaultMax is how many nudges a results page shows at most.
const DefaultMax = 2

// DismissalStore is the caller-owned record of which nudge ids the user has
// already dismissed. Implementations are session-scoped; the evaluator itself
// stays stateless.
type DismissalStore interface {
	IsDismissed(id string) bool
	Dismiss(id string)
}

// Evaluate filters the rule table to the given tool, evaluates each
// condition against data, sorts ascending by priority (stable, declaration
// order breaks ties), truncates to max entries and projects the survivors
// into tool-agnostic descriptors.
//
// An unknown tool or an empty payload yields an empty slice, never an error.
func Evaluate(tool entities.ToolSlug, data map[string]any, max int) []entities.EvaluatedNudge {
	if max <= 0 {
		max = DefaultMax
	}

	matched := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Tool != tool {
			continue
		}
		if r.Condition.Holds(data) {
			matched = append(matched, r)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority < matched[j].Priority
	})
	if len(matched) > max {
		matched = matched[:max]
	}

	out := make([]entities.EvaluatedNudge, 0, len(matched))
	for _, r := range matched {
		out = append(out, entities.EvaluatedNudge{
			ID:         r.ID,
			Variant:    r.Variant,
			MessageKey: r.MessageKey,
			CtaKey:     r.CtaKey,
			TargetHref: r.TargetHref,
			TargetTool: r.TargetTool,
			Icon:       r.Icon,
		})
	}
	return out
}

// FilterDismissed drops nudges the user has already dismissed. A nil store
// keeps everything.
func FilterDismissed(nudges []entities.EvaluatedNudge, store DismissalStore) []entities.EvaluatedNudge {
	if store == nil {
		return nudges
	}
	out := nudges[:0:0]
	for _, n := range nudges {
		if !store.IsDismissed(n.ID) {
			out = append(out, n)
		}
	}
	return out
}
