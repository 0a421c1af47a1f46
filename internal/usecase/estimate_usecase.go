package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"aviniti_tools/internal/catalog"
	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/gemini"
	"aviniti_tools/internal/pricing"
	"aviniti_tools/internal/schema"
	"aviniti_tools/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDescription = errors.New("invalid description")
	ErrNoFeaturesSelected = errors.New("no features selected")
	ErrUnknownFeatureID   = errors.New("unknown feature id")
	ErrAIUnavailable      = errors.New("ai estimate unavailable")
)

const (
	estimateTemperature = 0.3
	estimateMaxTokens   = 4096
	estimateTimeout     = 45 * time.Second

	maxDescriptionLen = 2000
	persistTimeout    = 10 * time.Second
)

// ContactInfo is the optional lead contact block of an estimate request.
type ContactInfo struct {
	Email    string
	Name     string
	Phone    string
	Whatsapp string
}

// GenerateEstimateInput is the validated form payload for the estimate flow.
type GenerateEstimateInput struct {
	ProjectType string
	Description string
	FeatureIDs  []string
	Questions   []gemini.Question
	Answers     map[string]bool
	Locale      string
	Contact     *ContactInfo
}

// IEstimateUseCase exposes the estimate tool operations.
//
//   - GenerateEstimate: deterministic pricing + AI narrative, reconciled so
//     that every cost figure in the response comes from the calculator.
//   - RecalculatePricing: pricing only, used by the feature selector while
//     the user is still composing a request.

type IEstimateUseCase interface {
	GenerateEstimate(ctx context.Context, in GenerateEstimateInput) (entities.EstimateResponse, error)
	RecalculatePricing(ctx context.Context, featureIDs []string) (entities.PricingResult, *entities.DiscountThreshold, error)
}

type EstimateUseCase struct {
	ai             interfaces.IAIClient
	leadRepo       interfaces.ILeadRepository
	submissionRepo interfaces.IAISubmissionRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(ai interfaces.IAIClient, leadRepo interfaces.ILeadRepository, submissionRepo interfaces.IAISubmissionRepository) *EstimateUseCase {
	return &EstimateUseCase{ai: ai, leadRepo: leadRepo, submissionRepo: submissionRepo}
}

func (u *EstimateUseCase) GenerateEstimate(ctx context.Context, in GenerateEstimateInput) (entities.EstimateResponse, error) {
	log.Printf("[estimate][usecase] generate start features=%d locale=%s", len(in.FeatureIDs), in.Locale)

	description := gemini.SanitizePromptInput(in.Description, maxDescriptionLen)
	if strings.TrimSpace(description) == "" {
		log.Printf("[estimate][usecase] invalid description (empty after sanitization)")
		return entities.EstimateResponse{}, ErrInvalidDescription
	}
	if len(in.FeatureIDs) == 0 {
		log.Printf("[estimate][usecase] no features selected")
		return entities.EstimateResponse{}, ErrNoFeaturesSelected
	}
	for _, id := range in.FeatureIDs {
		if catalog.GetFeatureByID(id) == nil {
			log.Printf("[estimate][usecase] unknown feature id=%q", id)
			return entities.EstimateResponse{}, fmt.Errorf("%w: %s", ErrUnknownFeatureID, id)
		}
	}
	if u.ai == nil {
		log.Printf("[estimate][usecase] ai client not configured")
		return entities.EstimateResponse{}, ErrAIUnavailable
	}

	priced := pricing.CalculateEstimate(in.FeatureIDs)

	prompt := gemini.BuildEstimatePrompt(gemini.EstimatePromptInput{
		ProjectType:        in.ProjectType,
		Description:        description,
		Answers:            in.Answers,
		Questions:          in.Questions,
		SelectedFeatureIDs: in.FeatureIDs,
		TotalCost:          priced.Total,
		TotalTimelineDays:  priced.TotalTimelineDays,
		Locale:             in.Locale,
		InputLanguage:      gemini.DetectInputLanguage(description),
	})

	start := time.Now()
	result, err := u.ai.GenerateJSONContent(ctx, prompt, interfaces.GenerateOptions{
		Temperature:     estimateTemperature,
		MaxOutputTokens: estimateMaxTokens,
		Timeout:         estimateTimeout,
	})
	elapsed := time.Since(start).Milliseconds()
	if err != nil || !result.Success || len(result.Data) == 0 {
		log.Printf("[estimate][usecase] ai generation failed err=%v provider_err=%q elapsed_ms=%d", err, result.Error, elapsed)
		u.persistAsync(in, entities.AISubmission{
			ProcessingTimeMs: elapsed,
			Status:           entities.SubmissionStatusFailed,
		})
		return entities.EstimateResponse{}, ErrAIUnavailable
	}

	parsed := schema.ParseEstimateCreative(result.Data)
	if !parsed.Success {
		log.Printf("[estimate][usecase] ai response failed schema validation issues=%d first=%v elapsed_ms=%d", len(parsed.Issues), firstIssue(parsed.Issues), elapsed)
		u.persistAsync(in, entities.AISubmission{
			Response:         result.Data,
			ProcessingTimeMs: elapsed,
			Status:           entities.SubmissionStatusFailed,
		})
		return entities.EstimateResponse{}, ErrAIUnavailable
	}

	response := reconcileEstimate(*parsed.Data, priced)
	log.Printf("[estimate][usecase] generate success project=%q total=%d elapsed_ms=%d", response.ProjectName, priced.Total, elapsed)

	u.persistAsync(in, entities.AISubmission{
		Response:         result.Data,
		ProcessingTimeMs: elapsed,
		Status:           entities.SubmissionStatusCompleted,
	})
	return response, nil
}

func (u *EstimateUseCase) RecalculatePricing(ctx context.Context, featureIDs []string) (entities.PricingResult, *entities.DiscountThreshold, error) {
	if len(featureIDs) == 0 {
		return entities.PricingResult{}, nil, ErrNoFeaturesSelected
	}
	for _, id := range featureIDs {
		if catalog.GetFeatureByID(id) == nil {
			return entities.PricingResult{}, nil, fmt.Errorf("%w: %s", ErrUnknownFeatureID, id)
		}
	}

	priced := pricing.CalculateEstimate(featureIDs)
	return priced, pricing.NextDiscountThreshold(len(priced.Features)), nil
}

// persistAsync writes the lead and submission records without blocking the
// response. Failures are logged and swallowed: persistence must never alter
// what the visitor sees.
func (u *EstimateUseCase) persistAsync(in GenerateEstimateInput, submission entities.AISubmission) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[estimate][persist] panic recovered: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		now := time.Now().UTC()
		leadID := ""
		if u.leadRepo != nil && in.Contact != nil && in.Contact.Email != "" {
			lead := entities.Lead{
				ID:          uuid.NewString(),
				Email:       in.Contact.Email,
				Name:        in.Contact.Name,
				Phone:       in.Contact.Phone,
				Whatsapp:    in.Contact.Whatsapp,
				Source:      entities.ToolGetEstimate,
				Locale:      in.Locale,
				ProjectType: in.ProjectType,
				Features:    in.FeatureIDs,
				Description: in.Description,
				CreatedAt:   now,
			}
			if _, err := u.leadRepo.Create(ctx, lead); err != nil {
				log.Printf("[estimate][persist] lead write failed err=%v", err)
			} else {
				leadID = lead.ID
			}
		}

		if u.submissionRepo == nil {
			return
		}
		submission.ID = uuid.NewString()
		submission.Tool = entities.ToolGetEstimate
		submission.LeadID = leadID
		submission.Model = getenvDefault("GEMINI_MODEL", "gemini-2.0-flash")
		submission.Locale = in.Locale
		submission.CreatedAt = now
		if _, err := u.submissionRepo.Create(ctx, submission); err != nil {
			log.Printf("[estimate][persist] submission write failed err=%v", err)
		}
	}()
}

// reconcileEstimate merges the AI narrative with the deterministic pricing
// result. Narrative fields pass through verbatim; every cost figure comes
// from the calculator, with min == max signaling a single-point estimate.
func reconcileEstimate(creative entities.EstimateCreative, priced entities.PricingResult) entities.EstimateResponse {
	phases := reconcilePhases(creative.EstimatedTimeline.Phases, priced.Total)
	return entities.EstimateResponse{
		ProjectName:       creative.ProjectName,
		AlternativeNames:  creative.AlternativeNames,
		ProjectSummary:    creative.ProjectSummary,
		EstimatedCost:     entities.CostRange{Min: priced.Total, Max: priced.Total, Currency: priced.Currency},
		EstimatedTimeline: entities.EstimateTimeline{Weeks: creative.EstimatedTimeline.Weeks, Phases: phases},
		Approach:          creative.Approach,
		MatchedSolution:   creative.MatchedSolution,
		TechStack:         creative.TechStack,
		KeyInsights:       creative.KeyInsights,
		StrategicInsights: creative.StrategicInsights,
		Breakdown:         phases,
		Pricing:           priced,
	}
}

// phaseKeywords maps ratio-bucket keys to name fragments the AI tends to use
// for that phase, in English and Arabic.
var phaseKeywords = map[string][]string{
	"discovery": {"discover", "planning", "research", "scope", "اكتشاف", "تخطيط"},
	"design":    {"design", "ui", "ux", "prototype", "تصميم"},
	"backend":   {"backend", "api", "server", "database", "خلفية", "خادم"},
	"frontend":  {"frontend", "front-end", "mobile app", "interface", "client", "واجهة"},
	"testing":   {"test", "qa", "quality", "اختبار"},
	"launch":    {"launch", "deploy", "release", "go-live", "إطلاق", "نشر"},
}

// reconcilePhases assigns cost shares to AI-authored phases. When the phase
// count matches the ratio table, each phase claims a ratio bucket by name
// keyword, and unmatched phases take the leftover buckets in table order.
// When the counts diverge the total is split equally instead, with the last
// phase absorbing the rounding remainder.
func reconcilePhases(phases []entities.CreativePhase, total int) []entities.EstimatePhase {
	out := make([]entities.EstimatePhase, len(phases))
	costs := phaseCosts(phases, total)
	for i, p := range phases {
		out[i] = entities.EstimatePhase{
			Phase:       p.Phase,
			Name:        p.Name,
			Description: p.Description,
			Cost:        costs[i],
			Duration:    p.Duration,
		}
	}
	return out
}

func phaseCosts(phases []entities.CreativePhase, total int) []int {
	n := len(phases)
	costs := make([]int, n)
	if n == 0 {
		return costs
	}

	if n == len(pricing.PhaseCostRatios) {
		shares := pricing.DistributeAcrossPhases(total)
		keys := matchPhaseNames(phases)
		for i, key := range keys {
			costs[i] = shares[key]
		}
		return costs
	}

	distributed := 0
	for i := range phases {
		if i == n-1 {
			costs[i] = total - distributed
			break
		}
		share := int(math.Round(float64(total) / float64(n)))
		costs[i] = share
		distributed += share
	}
	return costs
}

// matchPhaseNames resolves each phase to a distinct ratio-bucket key. First
// pass matches by name keyword against unclaimed buckets; the second hands
// leftover buckets to unmatched phases in table order.
func matchPhaseNames(phases []entities.CreativePhase) []string {
	keys := make([]string, len(phases))
	claimed := make(map[string]bool, len(pricing.PhaseCostRatios))

	for i, p := range phases {
		name := strings.ToLower(p.Name)
		for _, pr := range pricing.PhaseCostRatios {
			if claimed[pr.Key] {
				continue
			}
			if nameMatchesBucket(name, pr.Key) {
				keys[i] = pr.Key
				claimed[pr.Key] = true
				break
			}
		}
	}

	next := 0
	for i := range keys {
		if keys[i] != "" {
			continue
		}
		for claimed[pricing.PhaseCostRatios[next].Key] {
			next++
		}
		keys[i] = pricing.PhaseCostRatios[next].Key
		claimed[keys[i]] = true
	}
	return keys
}

func nameMatchesBucket(loweredName, key string) bool {
	for _, kw := range phaseKeywords[key] {
		if strings.Contains(loweredName, kw) {
			return true
		}
	}
	return false
}

func firstIssue(issues []schema.Issue) any {
	if len(issues) == 0 {
		return nil
	}
	return issues[0]
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
