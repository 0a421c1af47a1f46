package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/usecase/interfaces"
	mock_interfaces "aviniti_tools/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCreative(t *testing.T, phaseNames []string) json.RawMessage {
	t.Helper()
	phases := make([]map[string]any, len(phaseNames))
	for i, n := range phaseNames {
		phases[i] = map[string]any{
			"phase":       i + 1,
			"name":        n,
			"description": "Work carried out during this stage.",
			"duration":    "2 weeks",
		}
	}
	b, err := json.Marshal(map[string]any{
		"projectName":    "OrderFlow",
		"projectSummary": "A delivery platform for local restaurants.",
		"estimatedTimeline": map[string]any{
			"weeks":  10,
			"phases": phases,
		},
		"approach":        "custom",
		"matchedSolution": nil,
		"keyInsights": []string{
			"Start with a single city to validate demand.",
			"Driver onboarding is the operational bottleneck.",
			"Payments integration adds regulatory overhead.",
		},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

var sixPhaseNames = []string{
	"Discovery & Planning",
	"UI/UX Design",
	"Backend Development",
	"Frontend Development",
	"Testing & QA",
	"Deployment & Launch",
}

func estimateInput() GenerateEstimateInput {
	return GenerateEstimateInput{
		ProjectType: "web-app",
		Description: "A delivery app for local restaurants with live tracking.",
		FeatureIDs:  []string{"auth-email-password"},
		Locale:      "en",
	}
}

func TestEstimateUseCase_GenerateEstimate_Validations(t *testing.T) {
	t.Run("empty description", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		in := estimateInput()
		in.Description = "   "
		_, err := uc.GenerateEstimate(context.Background(), in)
		if !errors.Is(err, ErrInvalidDescription) {
			t.Fatalf("expected ErrInvalidDescription, got %v", err)
		}
	})

	t.Run("no features", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		in := estimateInput()
		in.FeatureIDs = nil
		_, err := uc.GenerateEstimate(context.Background(), in)
		if !errors.Is(err, ErrNoFeaturesSelected) {
			t.Fatalf("expected ErrNoFeaturesSelected, got %v", err)
		}
	})

	t.Run("unknown feature id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		in := estimateInput()
		in.FeatureIDs = []string{"auth-email-password", "does-not-exist"}
		_, err := uc.GenerateEstimate(context.Background(), in)
		if !errors.Is(err, ErrUnknownFeatureID) {
			t.Fatalf("expected ErrUnknownFeatureID, got %v", err)
		}
		if !strings.Contains(err.Error(), "does-not-exist") {
			t.Fatalf("error should name the offending id, got %q", err)
		}
	})

	t.Run("ai client not configured", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if !errors.Is(err, ErrAIUnavailable) {
			t.Fatalf("expected ErrAIUnavailable, got %v", err)
		}
	})
}

func TestEstimateUseCase_GenerateEstimate(t *testing.T) {
	t.Run("ai failure surfaces as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GenerateResult{}, errors.New("network"))

		uc := NewEstimateUseCase(ai, nil, nil)
		_, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if !errors.Is(err, ErrAIUnavailable) {
			t.Fatalf("expected ErrAIUnavailable, got %v", err)
		}
	})

	t.Run("provider level failure surfaces as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GenerateResult{Success: false, Error: "quota"}, nil)

		uc := NewEstimateUseCase(ai, nil, nil)
		_, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if !errors.Is(err, ErrAIUnavailable) {
			t.Fatalf("expected ErrAIUnavailable, got %v", err)
		}
	})

	t.Run("schema violation surfaces as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GenerateResult{Success: true, Data: json.RawMessage(`{"projectName":""}`)}, nil)

		uc := NewEstimateUseCase(ai, nil, nil)
		_, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if !errors.Is(err, ErrAIUnavailable) {
			t.Fatalf("expected ErrAIUnavailable, got %v", err)
		}
	})

	t.Run("success reconciles narrative with deterministic pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string, opts interfaces.GenerateOptions) (interfaces.GenerateResult, error) {
				if opts.Temperature != 0.3 || opts.MaxOutputTokens != 4096 || opts.Timeout != 45*time.Second {
					t.Errorf("unexpected options: %+v", opts)
				}
				if !strings.Contains(prompt, "auth-email-password") {
					t.Errorf("prompt should list selected features")
				}
				return interfaces.GenerateResult{Success: true, Data: validCreative(t, sixPhaseNames)}, nil
			})

		uc := NewEstimateUseCase(ai, nil, nil)
		res, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// auth-email-password: 400 base, +20% design surcharge.
		if res.Pricing.Total != 480 {
			t.Fatalf("total=%d, want 480", res.Pricing.Total)
		}
		if res.EstimatedCost.Min != 480 || res.EstimatedCost.Max != 480 {
			t.Fatalf("estimatedCost should be a single point, got %+v", res.EstimatedCost)
		}
		if res.ProjectName != "OrderFlow" {
			t.Fatalf("narrative should pass through, got %q", res.ProjectName)
		}

		sum := 0
		for _, p := range res.Breakdown {
			sum += p.Cost
		}
		if sum != 480 {
			t.Fatalf("phase costs sum to %d, want 480", sum)
		}
	})

	t.Run("phase costs follow names not positions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		shuffled := []string{
			"Deployment & Launch",
			"Backend Development",
			"Discovery & Planning",
			"Testing & QA",
			"UI/UX Design",
			"Frontend Development",
		}
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GenerateResult{Success: true, Data: validCreative(t, shuffled)}, nil)

		uc := NewEstimateUseCase(ai, nil, nil)
		res, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Shares of 480 by ratio: backend 144, design 72, discovery 38.
		byName := map[string]int{}
		for _, p := range res.Breakdown {
			byName[p.Name] = p.Cost
		}
		if byName["Backend Development"] != 144 {
			t.Fatalf("backend cost=%d, want 144", byName["Backend Development"])
		}
		if byName["UI/UX Design"] != 72 {
			t.Fatalf("design cost=%d, want 72", byName["UI/UX Design"])
		}
		if byName["Discovery & Planning"] != 38 {
			t.Fatalf("discovery cost=%d, want 38", byName["Discovery & Planning"])
		}
	})

	t.Run("phase count mismatch falls back to equal shares", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		five := []string{
			"Discovery & Planning",
			"UI/UX Design",
			"Backend Development",
			"Testing & QA",
			"Deployment & Launch",
		}
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GenerateResult{Success: true, Data: validCreative(t, five)}, nil)

		uc := NewEstimateUseCase(ai, nil, nil)
		res, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sum := 0
		for i, p := range res.Breakdown {
			if i < len(res.Breakdown)-1 && p.Cost != 96 {
				t.Fatalf("phase %d cost=%d, want 96", i, p.Cost)
			}
			sum += p.Cost
		}
		if sum != 480 {
			t.Fatalf("phase costs sum to %d, want 480", sum)
		}
	})

	t.Run("persists lead and submission without blocking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GenerateResult{Success: true, Data: validCreative(t, sixPhaseNames)}, nil)

		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		subRepo := mock_interfaces.NewMockIAISubmissionRepository(ctrl)
		persisted := make(chan entities.AISubmission, 1)
		leadRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.Email != "dev@example.com" || l.Source != entities.ToolGetEstimate {
					t.Errorf("unexpected lead: %+v", l)
				}
				return l, nil
			})
		subRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.AISubmission) (entities.AISubmission, error) {
				persisted <- s
				return s, nil
			})

		uc := NewEstimateUseCase(ai, leadRepo, subRepo)
		in := estimateInput()
		in.Contact = &ContactInfo{Email: "dev@example.com", Name: "Dev"}
		if _, err := uc.GenerateEstimate(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case s := <-persisted:
			if s.Status != entities.SubmissionStatusCompleted {
				t.Fatalf("status=%s, want completed", s.Status)
			}
			if s.Tool != entities.ToolGetEstimate || s.LeadID == "" {
				t.Fatalf("unexpected submission: %+v", s)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("submission was never persisted")
		}
	})

	t.Run("persistence failure does not change the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ai := mock_interfaces.NewMockIAIClient(ctrl)
		ai.EXPECT().GenerateJSONContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.GenerateResult{Success: true, Data: validCreative(t, sixPhaseNames)}, nil)

		subRepo := mock_interfaces.NewMockIAISubmissionRepository(ctrl)
		persisted := make(chan struct{}, 1)
		subRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.AISubmission) (entities.AISubmission, error) {
				persisted <- struct{}{}
				return entities.AISubmission{}, errors.New("table missing")
			})

		uc := NewEstimateUseCase(ai, nil, subRepo)
		res, err := uc.GenerateEstimate(context.Background(), estimateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Pricing.Total != 480 {
			t.Fatalf("total=%d, want 480", res.Pricing.Total)
		}

		select {
		case <-persisted:
		case <-time.After(2 * time.Second):
			t.Fatal("submission write never attempted")
		}
	})
}

func TestEstimateUseCase_RecalculatePricing(t *testing.T) {
	uc := NewEstimateUseCase(nil, nil, nil)

	t.Run("empty selection", func(t *testing.T) {
		_, _, err := uc.RecalculatePricing(context.Background(), nil)
		if !errors.Is(err, ErrNoFeaturesSelected) {
			t.Fatalf("expected ErrNoFeaturesSelected, got %v", err)
		}
	})

	t.Run("unknown feature id", func(t *testing.T) {
		_, _, err := uc.RecalculatePricing(context.Background(), []string{"nope"})
		if !errors.Is(err, ErrUnknownFeatureID) {
			t.Fatalf("expected ErrUnknownFeatureID, got %v", err)
		}
	})

	t.Run("prices and reports next discount tier", func(t *testing.T) {
		priced, threshold, err := uc.RecalculatePricing(context.Background(), []string{"auth-email-password"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if priced.Total != 480 {
			t.Fatalf("total=%d, want 480", priced.Total)
		}
		if threshold == nil || threshold.Needed != 9 || threshold.NextPercent != 10 {
			t.Fatalf("unexpected threshold: %+v", threshold)
		}
	})
}
