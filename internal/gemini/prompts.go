// Package gemini builds prompts for the generative-AI collaborator and
// prepares user input for safe inclusion in them. The AI authors creative
// content only; every cost figure in a prompt arrives pre-calculated.
package gemini

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"aviniti_tools/internal/catalog"
)

// Question is one clarifying yes/no question answered by the user during the
// estimate flow.
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

// EstimatePromptInput carries everything the estimate prompt needs. TotalCost
// and TotalTimelineDays come from the deterministic calculator.
type EstimatePromptInput struct {
	ProjectType        string
	Description        string
	Answers            map[string]bool
	Questions          []Question
	SelectedFeatureIDs []string
	TotalCost          int
	TotalTimelineDays  int
	Locale             string
	InputLanguage      string
}

var promptPrinter = message.NewPrinter(language.English)

// BuildEstimatePrompt renders the creative-content prompt for the estimate
// tool. The compressed catalog keeps the feature vocabulary in front of the
// model without blowing the token budget.
func BuildEstimatePrompt(in EstimatePromptInput) string {
	var answered strings.Builder
	for _, q := range in.Questions {
		answer := "NO"
		if in.Answers[q.ID] {
			answer = "YES"
		}
		fmt.Fprintf(&answered, "- %s: %s\n", q.Question, answer)
	}

	var featureList strings.Builder
	for _, id := range in.SelectedFeatureIDs {
		fmt.Fprintf(&featureList, "- %s\n", id)
	}

	totalWeeks := int(math.Ceil(float64(in.TotalTimelineDays) / 5))
	if totalWeeks < 4 {
		totalWeeks = 4
	}

	lang := "English"
	if in.Locale == "ar" || in.InputLanguage == "ar" {
		lang = "Arabic"
	}

	return fmt.Sprintf(`You are an expert software project consultant for Aviniti, an AI and app development company based in Amman, Jordan.

You are generating the CREATIVE content for a "Project Blueprint" report. Pricing has already been calculated deterministically — you do NOT need to estimate costs. Focus on naming, strategy, and insights.

PROJECT CONTEXT:
- Project Type: %s
- Client's Description: %s
- Clarifying Questions & Answers:
%s- Selected Feature IDs (from Aviniti's catalog):
%s- Pre-calculated Total: %s USD
- Pre-calculated Timeline: ~%d weeks (%d business days)
- Language: %s

FEATURE CATALOG (featureId|categoryId):
%s

YOUR TASK:
1. Give the project a creative, memorable name (2-4 words).
2. Generate 3-4 alternative project names that are modern, trendy, catchy.
3. Write a 2-3 sentence project summary.
4. Break down into exactly 6 phases with names, descriptions, and durations (NO costs — costs are calculated separately):
   Phase 1: Discovery & Planning
   Phase 2: UI/UX Design
   Phase 3: Backend Development
   Phase 4: Frontend Development
   Phase 5: Testing & QA
   Phase 6: Deployment & Launch
   Distribute the %d weeks logically across phases.
5. Check if the project matches any of our Ready-Made Solutions:
   - delivery-app: Delivery App ($10,000 / 35 days)
   - kindergarten-management: Kindergarten Management ($8,000 / 35 days)
   - hypermarket-system: Hypermarket System ($15,000 / 35 days)
   - office-suite: Office Suite ($8,000 / 35 days)
   - gym-management: Gym Management ($25,000 / 60 days)
   - airbnb-clone: Airbnb Clone ($15,000 / 35 days)
   - hair-transplant-ai: Hair Transplant AI ($18,000 / 35 days)
6. Suggest a tech stack (3-6 technologies).
7. Generate 3-5 key insights (risks, recommendations, opportunities).
8. Recommend approach: "custom", "ready-made" (>80%% feature match), or "hybrid".
9. Generate 3 strategic insights (1 strength, 1 challenge, 1 recommendation) with detailed descriptions.

Respond in %s.

OUTPUT FORMAT (valid JSON):
{
  "projectName": "string",
  "alternativeNames": ["string", "string", "string"],
  "projectSummary": "string",
  "estimatedTimeline": {
    "weeks": %d,
    "phases": [
      { "phase": 1, "name": "string", "description": "string", "duration": "X weeks" }
    ]
  },
  "approach": "custom" | "ready-made" | "hybrid",
  "matchedSolution": { "slug": "string", "name": "string", "startingPrice": number, "deploymentTimeline": "string", "featureMatchPercentage": number } | null,
  "techStack": ["string"],
  "keyInsights": ["string"],
  "strategicInsights": [
    { "type": "strength" | "challenge" | "recommendation", "title": "string", "description": "string" }
  ]
}`,
		in.ProjectType,
		in.Description,
		answered.String(),
		featureList.String(),
		promptPrinter.Sprintf("$%d", in.TotalCost),
		totalWeeks,
		in.TotalTimelineDays,
		lang,
		catalog.BuildCompressedCatalog(),
		totalWeeks,
		lang,
		totalWeeks,
	)
}
