package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aviniti_tools/internal/adapter/http/handlers/mocks"
	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/usecase"
	"aviniti_tools/internal/usecase/interfaces"
	mock_interfaces "aviniti_tools/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func estimateBody(locale string) string {
	b, _ := json.Marshal(map[string]any{
		"projectType":      "web-app",
		"description":      "A delivery app for local restaurants.",
		"selectedFeatures": []string{"auth-email-password"},
		"locale":           locale,
	})
	return string(b)
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func allowedResult() interfaces.RateLimitResult {
	return interfaces.RateLimitResult{Allowed: true, Remaining: 4, ResetAt: time.Unix(1767225600, 0), Limit: 5}
}

func TestEstimateHandler_GenerateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/ai/estimate", h.GenerateEstimate)

		w := postJSON(r, "/v1/ai/estimate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/ai/estimate", h.GenerateEstimate)

		w := postJSON(r, "/v1/ai/estimate", `{"selectedFeatures":["auth-email-password"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rate limited with localized message and headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		limiter := mock_interfaces.NewMockIRateLimiter(ctrl)
		limiter.EXPECT().Check(gomock.Any(), gomock.Any(), 5, 24*time.Hour).
			Return(interfaces.RateLimitResult{Allowed: false, Remaining: 0, ResetAt: time.Unix(1767225600, 0), Limit: 5}, nil)
		h := NewEstimateHandler(uc, limiter)

		r := gin.New()
		r.POST("/v1/ai/estimate", h.GenerateEstimate)

		w := postJSON(r, "/v1/ai/estimate", estimateBody("ar"))
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
			t.Fatalf("X-RateLimit-Remaining=%q, want 0", got)
		}
		if got := w.Header().Get("X-RateLimit-Reset"); got != "1767225600" {
			t.Fatalf("X-RateLimit-Reset=%q", got)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["code"] != "RATE_LIMITED" {
			t.Fatalf("code=%q", body["code"])
		}
		if !strings.Contains(body["message"], "الحد اليومي") {
			t.Fatalf("expected arabic message, got %q", body["message"])
		}
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).
			Return(entities.EstimateResponse{ProjectName: "OrderFlow"}, nil)
		limiter := mock_interfaces.NewMockIRateLimiter(ctrl)
		limiter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.RateLimitResult{}, errors.New("backend down"))
		h := NewEstimateHandler(uc, limiter)

		r := gin.New()
		r.POST("/v1/ai/estimate", h.GenerateEstimate)

		w := postJSON(r, "/v1/ai/estimate", estimateBody("en"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("ai unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).
			Return(entities.EstimateResponse{}, usecase.ErrAIUnavailable)
		h := NewEstimateHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/ai/estimate", h.GenerateEstimate)

		w := postJSON(r, "/v1/ai/estimate", estimateBody("en"))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "AI_UNAVAILABLE" {
			t.Fatalf("code=%q", body["code"])
		}
	})

	t.Run("success passes normalized input to the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		limiter := mock_interfaces.NewMockIRateLimiter(ctrl)
		limiter.EXPECT().Check(gomock.Any(), gomock.Any(), 5, 24*time.Hour).Return(allowedResult(), nil)
		uc.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.GenerateEstimateInput) (entities.EstimateResponse, error) {
				if in.Locale != "en" {
					t.Errorf("locale=%q, want en", in.Locale)
				}
				if len(in.FeatureIDs) != 1 || in.FeatureIDs[0] != "auth-email-password" {
					t.Errorf("unexpected feature ids: %v", in.FeatureIDs)
				}
				return entities.EstimateResponse{ProjectName: "OrderFlow"}, nil
			})
		h := NewEstimateHandler(uc, limiter)

		r := gin.New()
		r.POST("/v1/ai/estimate", h.GenerateEstimate)

		w := postJSON(r, "/v1/ai/estimate", estimateBody("unknown-locale"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("X-RateLimit-Remaining"); got != "4" {
			t.Fatalf("X-RateLimit-Remaining=%q, want 4", got)
		}
		if !strings.Contains(w.Body.String(), `"projectName":"OrderFlow"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_RecalculateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/estimates/recalculate", h.RecalculateEstimate)

		w := postJSON(r, "/v1/estimates/recalculate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown feature id names the offender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().RecalculatePricing(gomock.Any(), []string{"nope"}).
			Return(entities.PricingResult{}, nil, errors.Join(usecase.ErrUnknownFeatureID, errors.New("nope")))
		h := NewEstimateHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/estimates/recalculate", h.RecalculateEstimate)

		w := postJSON(r, "/v1/estimates/recalculate", `{"selectedFeatures":["nope"]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "nope") {
			t.Fatalf("message should name the offending id: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().RecalculatePricing(gomock.Any(), []string{"auth-email-password"}).
			Return(entities.PricingResult{Subtotal: 400, DesignSurcharge: 80, Total: 480, Currency: "USD"},
				&entities.DiscountThreshold{Needed: 9, NextPercent: 10}, nil)
		h := NewEstimateHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/estimates/recalculate", h.RecalculateEstimate)

		w := postJSON(r, "/v1/estimates/recalculate", `{"selectedFeatures":["auth-email-password"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"total":480`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"nextDiscount"`) {
			t.Fatalf("expected next discount in body: %s", w.Body.String())
		}
	})
}
