// Package schema validates AI-authored payloads before they reach
// reconciliation. Validation mirrors the shapes promised in the prompts;
// callers branch only on Success and must never assume anything beyond it.
package schema

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"aviniti_tools/internal/domain/entities"
)

// Issue is one violated constraint, with a dotted path to the offending
// field.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// EstimateCreativeResult is the outcome of parsing an AI estimate payload.
// Data is set only when Success is true.
type EstimateCreativeResult struct {
	Success bool
	Data    *entities.EstimateCreative
	Issues  []Issue
}

// ParseEstimateCreative decodes and validates the AI's creative estimate
// payload. Any decode failure or constraint violation yields Success=false
// with the collected issues; it never panics and never returns partial data.
func ParseEstimateCreative(raw json.RawMessage) EstimateCreativeResult {
	var c entities.EstimateCreative
	if err := json.Unmarshal(raw, &c); err != nil {
		return EstimateCreativeResult{Issues: []Issue{{Path: "$", Message: "invalid JSON: " + err.Error()}}}
	}

	var issues []Issue
	add := func(path, msg string) {
		issues = append(issues, Issue{Path: path, Message: msg})
	}

	checkLen(&issues, "projectName", c.ProjectName, 1, 100)
	if c.AlternativeNames != nil {
		if len(c.AlternativeNames) < 2 || len(c.AlternativeNames) > 4 {
			add("alternativeNames", "expected 2-4 entries")
		}
		for i, n := range c.AlternativeNames {
			checkLen(&issues, fmt.Sprintf("alternativeNames[%d]", i), n, 1, 50)
		}
	}
	checkLen(&issues, "projectSummary", c.ProjectSummary, 10, 500)

	if c.EstimatedTimeline.Weeks < 1 || c.EstimatedTimeline.Weeks > 104 {
		add("estimatedTimeline.weeks", "expected 1-104")
	}
	phases := c.EstimatedTimeline.Phases
	if len(phases) < 5 || len(phases) > 7 {
		add("estimatedTimeline.phases", "expected 5-7 phases")
	}
	for i, p := range phases {
		prefix := fmt.Sprintf("estimatedTimeline.phases[%d]", i)
		if p.Phase < 1 {
			add(prefix+".phase", "expected positive ordinal")
		}
		checkLen(&issues, prefix+".name", p.Name, 3, 100)
		checkLen(&issues, prefix+".description", p.Description, 10, 300)
		checkLen(&issues, prefix+".duration", p.Duration, 3, 50)
	}

	switch c.Approach {
	case entities.ApproachCustom, entities.ApproachReadyMade, entities.ApproachHybrid:
	default:
		add("approach", fmt.Sprintf("unknown approach %q", c.Approach))
	}

	if ms := c.MatchedSolution; ms != nil {
		if ms.Slug == "" {
			add("matchedSolution.slug", "required")
		}
		if ms.Name == "" {
			add("matchedSolution.name", "required")
		}
		if ms.StartingPrice <= 0 {
			add("matchedSolution.startingPrice", "expected positive")
		}
		if ms.FeatureMatchPercentage < 0 || ms.FeatureMatchPercentage > 100 {
			add("matchedSolution.featureMatchPercentage", "expected 0-100")
		}
	}

	if c.TechStack != nil && (len(c.TechStack) < 2 || len(c.TechStack) > 8) {
		add("techStack", "expected 2-8 entries")
	}

	if len(c.KeyInsights) < 3 || len(c.KeyInsights) > 5 {
		add("keyInsights", "expected 3-5 entries")
	}
	for i, k := range c.KeyInsights {
		checkLen(&issues, fmt.Sprintf("keyInsights[%d]", i), k, 10, 500)
	}

	if c.StrategicInsights != nil {
		if len(c.StrategicInsights) < 2 || len(c.StrategicInsights) > 4 {
			add("strategicInsights", "expected 2-4 entries")
		}
		for i, si := range c.StrategicInsights {
			prefix := fmt.Sprintf("strategicInsights[%d]", i)
			switch si.Type {
			case "strength", "challenge", "recommendation":
			default:
				add(prefix+".type", fmt.Sprintf("unknown type %q", si.Type))
			}
			checkLen(&issues, prefix+".title", si.Title, 3, 100)
			checkLen(&issues, prefix+".description", si.Description, 10, 500)
		}
	}

	if len(issues) > 0 {
		return EstimateCreativeResult{Issues: issues}
	}
	return EstimateCreativeResult{Success: true, Data: &c}
}

func checkLen(issues *[]Issue, path, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		*issues = append(*issues, Issue{
			Path:    path,
			Message: fmt.Sprintf("expected %d-%d characters, got %d", min, max, n),
		})
	}
}
