package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	request "aviniti_tools/internal/adapter/http/dto/request"
	response "aviniti_tools/internal/adapter/http/dto/response"
	"aviniti_tools/internal/gemini"
	"aviniti_tools/internal/i18n"
	"aviniti_tools/internal/usecase"
	"aviniti_tools/internal/usecase/interfaces"
	"aviniti_tools/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid estimate payload", http.StatusBadRequest)
)

const (
	estimateRateLimit  = 5
	estimateRateWindow = 24 * time.Hour
)

// EstimateHandler handles HTTP requests for the AI estimate tool.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	limiter interfaces.IRateLimiter
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, limiter interfaces.IRateLimiter) *EstimateHandler {
	return &EstimateHandler{usecase: uc, limiter: limiter}
}

// GenerateEstimate runs the full estimate flow: rate limit, deterministic
// pricing, AI narrative, reconciliation.
func (h *EstimateHandler) GenerateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	locale := i18n.NormalizeLocale(payload.Locale)

	if !h.allow(c, locale) {
		return
	}

	in := usecase.GenerateEstimateInput{
		ProjectType: payload.ProjectType,
		Description: payload.Description,
		FeatureIDs:  payload.ResolveFeatureIDs(),
		Questions:   toQuestions(payload.Questions),
		Answers:     payload.Answers,
		Locale:      locale,
	}
	if payload.UserInfo != nil {
		in.Contact = &usecase.ContactInfo{
			Email:    payload.UserInfo.Email,
			Name:     payload.UserInfo.Name,
			Phone:    payload.UserInfo.Phone,
			Whatsapp: payload.UserInfo.Whatsapp,
		}
	}

	estimate, err := h.usecase.GenerateEstimate(c.Request.Context(), in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// RecalculateEstimate reprices a feature selection without the AI.
func (h *EstimateHandler) RecalculateEstimate(c *gin.Context) {
	var payload request.RecalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	priced, next, err := h.usecase.RecalculatePricing(c.Request.Context(), payload.ResolveFeatureIDs())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricing(priced, next))
}

// allow applies the per-IP rate limit and writes the X-RateLimit-* headers.
// A limiter failure fails open: estimates keep working if the gate is down.
func (h *EstimateHandler) allow(c *gin.Context, locale string) bool {
	if h.limiter == nil {
		return true
	}

	key := rateLimitKey("estimate", c.ClientIP())
	res, err := h.limiter.Check(c.Request.Context(), key, estimateRateLimit, estimateRateWindow)
	if err != nil {
		log.Printf("[estimate][handler] rate limiter failed err=%v", err)
		return true
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

	if !res.Allowed {
		log.Printf("[estimate][handler] rate limited key=%s", key)
		appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", i18n.T(locale, "errors.rate_limited"), http.StatusTooManyRequests)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	return true
}

// rateLimitKey hashes the client IP so raw addresses never reach the limiter
// or its logs.
func rateLimitKey(scope, ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return scope + ":" + hex.EncodeToString(sum[:])
}

func toQuestions(qs []request.QuestionRequest) []gemini.Question {
	out := make([]gemini.Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, gemini.Question{ID: q.ID, Question: q.Question, Context: q.Context})
	}
	return out
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrNoFeaturesSelected),
		errors.Is(err, usecase.ErrUnknownFeatureID):
		// The error text names the offending value.
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAIUnavailable):
		return pkg.NewDomainErrorSimple("AI_UNAVAILABLE", "Estimate generation is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
