package interfaces

import (
	"context"

	"aviniti_tools/internal/domain/entities"
)

// IAISubmissionRepository abstracts DynamoDB persistence for AISubmission.

type IAISubmissionRepository interface {
	Create(ctx context.Context, s entities.AISubmission) (entities.AISubmission, error)
	GetByID(ctx context.Context, id string) (entities.AISubmission, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.AISubmission, error)
}
