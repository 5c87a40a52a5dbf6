package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSupplierName     = errors.New("invalid supplier name")
	ErrInvalidSupplierCategory = errors.New("invalid supplier category")
)

// ISupplierUseCase exposes the supplier directory.
type ISupplierUseCase interface {
	CreateSupplier(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	ListSuppliers(ctx context.Context) ([]entities.Supplier, error)
}

type SupplierUseCase struct {
	repo interfaces.ISupplierRepository
	now  func() time.Time
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, now: utcNow}
}

func (u *SupplierUseCase) CreateSupplier(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Supplier{}, ErrInvalidSupplierName
	}
	if s.Category != "" && !s.Category.IsValid() {
		return entities.Supplier{}, ErrInvalidSupplierCategory
	}

	s.ID = uuid.NewString()
	s.Contact = strings.TrimSpace(s.Contact)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.CreatedAt = u.now()
	return u.repo.Create(ctx, s)
}

func (u *SupplierUseCase) ListSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}
