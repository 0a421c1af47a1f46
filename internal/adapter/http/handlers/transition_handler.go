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

// TransitionHandler previews the metrics strip shown when a visitor carries
// their session from one tool into another.

type TransitionHandler struct {
	usecase usecase.ITransitionUseCase
}

func NewTransitionHandler(uc usecase.ITransitionUseCase) *TransitionHandler {
	return &TransitionHandler{usecase: uc}
}

func (h *TransitionHandler) PreviewTransition(c *gin.Context) {
	var payload request.TransitionPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid transition payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := h.usecase.Preview(c.Request.Context(), entities.ToolSlug(payload.From), entities.ToolSlug(payload.To), payload.SessionData, payload.Locale)
	if err != nil {
		appErr := mapTransitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionData(data))
}

func mapTransitionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransitionTool):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
