package usecase

import (
	"context"
	"errors"
	"log"

	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/i18n"
	"aviniti_tools/internal/transition"
)

var ErrInvalidTransitionTool = errors.New("invalid transition tool")

// ITransitionUseCase resolves the metric strip shown when a visitor hops from
// one tool to another carrying their session data along.

type ITransitionUseCase interface {
	Preview(ctx context.Context, fromTool, toTool entities.ToolSlug, sessionData map[string]any, locale string) (entities.TransitionData, error)
}

type TransitionUseCase struct{}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase() *TransitionUseCase {
	return &TransitionUseCase{}
}

func (u *TransitionUseCase) Preview(ctx context.Context, fromTool, toTool entities.ToolSlug, sessionData map[string]any, locale string) (entities.TransitionData, error) {
	if !entities.KnownTool(fromTool) || !entities.KnownTool(toTool) {
		log.Printf("[transition][usecase] unknown tool pair from=%q to=%q", fromTool, toTool)
		return entities.TransitionData{}, ErrInvalidTransitionTool
	}

	t := i18n.Translator(i18n.NormalizeLocale(locale))
	data := transition.GetTransitionMetrics(fromTool, toTool, sessionData, t)
	log.Printf("[transition][usecase] preview from=%s to=%s metrics=%d", fromTool, toTool, len(data.Metrics))
	return data, nil
}
