package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidClientName     = errors.New("invalid client name")
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidProductName    = errors.New("invalid product name")
	ErrProductClientMismatch = errors.New("product does not belong to client")
)

// IClientUseCase exposes the client and product registry.
type IClientUseCase interface {
	CreateClient(ctx context.Context, name, document string, honorario *decimal.Decimal) (entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	UpdateHonorario(ctx context.Context, id string, percent *decimal.Decimal) (entities.Client, error)
	CreateProduct(ctx context.Context, clientID, name string) (entities.Product, error)
	ListProducts(ctx context.Context, clientID string) ([]entities.Product, error)
}

type ClientUseCase struct {
	clients  interfaces.IClientRepository
	products interfaces.IProductRepository
	now      func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, products interfaces.IProductRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, products: products, now: utcNow}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, name, document string, honorario *decimal.Decimal) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if honorario != nil && !validPercent(*honorario) {
		return entities.Client{}, ErrInvalidPercent
	}

	now := u.now()
	c := entities.Client{
		ID:               uuid.NewString(),
		Name:             name,
		Document:         strings.TrimSpace(document),
		HonorarioPercent: honorario,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.clients.Create(ctx, c)
}

func (u *ClientUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.clients.List(ctx)
}

// UpdateHonorario sets the client's honorário; nil clears it so budgets fall
// back to the configured default.
func (u *ClientUseCase) UpdateHonorario(ctx context.Context, id string, percent *decimal.Decimal) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if percent != nil && !validPercent(*percent) {
		return entities.Client{}, ErrInvalidPercent
	}

	updated, err := u.clients.UpdateHonorario(ctx, id, percent)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) CreateProduct(ctx context.Context, clientID, name string) (entities.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if _, err := u.GetClient(ctx, clientID); err != nil {
		return entities.Product{}, err
	}

	p := entities.Product{
		ID:        uuid.NewString(),
		ClientID:  strings.TrimSpace(clientID),
		Name:      name,
		CreatedAt: u.now(),
	}
	return u.products.Create(ctx, p)
}

func (u *ClientUseCase) ListProducts(ctx context.Context, clientID string) ([]entities.Product, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.products.ListByClientID(ctx, clientID)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
