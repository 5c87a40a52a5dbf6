package interfaces

import (
	"context"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/rights"
)

type RightsFilter struct {
	ClientID  string
	ProductID string
}

// IRightsRepository abstracts DynamoDB persistence for RightsRecord.
type IRightsRepository interface {
	Create(ctx context.Context, r entities.RightsRecord) (entities.RightsRecord, error)
	GetByID(ctx context.Context, id string) (entities.RightsRecord, error)
	List(ctx context.Context, f RightsFilter) ([]entities.RightsRecord, error)
	Update(ctx context.Context, r entities.RightsRecord) (entities.RightsRecord, error)
}

// IRightsNotifier delivers an expiration warning for one record.
type IRightsNotifier interface {
	Notify(ctx context.Context, r entities.RightsRecord, threshold rights.Threshold, daysLeft int) error
}
