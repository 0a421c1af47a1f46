package interfaces

import (
	"context"

	"aviniti_tools/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Leads are written fire-and-forget after a tool run completes; a write
// failure is logged and never surfaces to the visitor.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
}
