package interfaces

import (
	"context"
	"errors"

	"orcamentos_rtv/internal/domain/entities"
)

// ErrVersionConflict is returned by IVersionRepository.Append when the
// version number is already taken by a concurrent save.
var ErrVersionConflict = errors.New("version number already taken")

type BudgetFilter struct {
	ClientID string
	Status   entities.BudgetStatus
}

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// The budgets service must be able to:
//   - create a draft budget with a yearly display sequence
//   - change the status on explicit user action
//   - track the latest version number after each append
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, f BudgetFilter) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
	SetLatestVersion(ctx context.Context, id string, versionNumber int) (entities.Budget, error)
	NextSequence(ctx context.Context, year int) (int, error)
}

// IVersionRepository stores immutable version snapshots. There is no update
// method: a save always appends.
type IVersionRepository interface {
	Append(ctx context.Context, v entities.Version) (entities.Version, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Version, error)
	GetLatest(ctx context.Context, budgetID string) (entities.Version, error)
}
