package handlers

import (
	"errors"
	"net/http"

	request "aviniti_tools/internal/adapter/http/dto/request"
	response "aviniti_tools/internal/adapter/http/dto/response"
	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/usecase"
	"aviniti_tools/pkg"

	"github.com/gin-gonic/gin"
)

// NudgeHandler handles cross-sell nudge evaluation and dismissal.

type NudgeHandler struct {
	usecase usecase.INudgeUseCase
}

func NewNudgeHandler(uc usecase.INudgeUseCase) *NudgeHandler {
	return &NudgeHandler{usecase: uc}
}

func (h *NudgeHandler) EvaluateNudges(c *gin.Context) {
	var payload request.NudgeEvaluateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid nudge payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	nudges, err := h.usecase.Evaluate(c.Request.Context(), entities.ToolSlug(payload.Tool), payload.Data, payload.Max, payload.SessionID)
	if err != nil {
		appErr := mapNudgeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNudges(nudges))
}

func (h *NudgeHandler) DismissNudge(c *gin.Context) {
	var payload request.NudgeDismissRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid dismiss payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Dismiss(c.Request.Context(), payload.SessionID, payload.NudgeID); err != nil {
		appErr := mapNudgeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapNudgeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNudgeTool),
		errors.Is(err, usecase.ErrInvalidNudgeID),
		errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
