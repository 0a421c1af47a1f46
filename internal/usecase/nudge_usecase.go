package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"aviniti_tools/internal/domain/entities"
	"aviniti_tools/internal/nudge"
)

var (
	ErrInvalidNudgeTool = errors.New("invalid nudge tool")
	ErrInvalidNudgeID   = errors.New("invalid nudge id")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// INudgeUseCase evaluates cross-sell nudges against a tool result payload and
// tracks per-session dismissals so a dismissed nudge stays gone for that
// visitor.

type INudgeUseCase interface {
	Evaluate(ctx context.Context, tool entities.ToolSlug, data map[string]any, max int, sessionID string) ([]entities.EvaluatedNudge, error)
	Dismiss(ctx context.Context, sessionID, nudgeID string) error
}

type NudgeUseCase struct {
	mu     sync.Mutex
	stores map[string]*nudge.MemoryDismissalStore
}

var _ INudgeUseCase = (*NudgeUseCase)(nil)

func NewNudgeUseCase() *NudgeUseCase {
	return &NudgeUseCase{stores: make(map[string]*nudge.MemoryDismissalStore)}
}

func (u *NudgeUseCase) Evaluate(ctx context.Context, tool entities.ToolSlug, data map[string]any, max int, sessionID string) ([]entities.EvaluatedNudge, error) {
	if !entities.KnownTool(tool) {
		log.Printf("[nudge][usecase] unknown tool=%q", tool)
		return nil, ErrInvalidNudgeTool
	}

	evaluated := nudge.Evaluate(tool, data, max)
	if sessionID = strings.TrimSpace(sessionID); sessionID != "" {
		evaluated = nudge.FilterDismissed(evaluated, u.storeFor(sessionID))
	}
	log.Printf("[nudge][usecase] evaluated tool=%s matched=%d", tool, len(evaluated))
	return evaluated, nil
}

func (u *NudgeUseCase) Dismiss(ctx context.Context, sessionID, nudgeID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	nudgeID = strings.TrimSpace(nudgeID)
	if nudgeID == "" {
		return ErrInvalidNudgeID
	}

	u.storeFor(sessionID).Dismiss(nudgeID)
	log.Printf("[nudge][usecase] dismissed session=%s nudge=%s", sessionID, nudgeID)
	return nil
}

func (u *NudgeUseCase) storeFor(sessionID string) *nudge.MemoryDismissalStore {
	u.mu.Lock()
	defer u.mu.Unlock()
	store, ok := u.stores[sessionID]
	if !ok {
		store = nudge.NewMemoryDismissalStore()
		u.stores[sessionID] = store
	}
	return store
}
