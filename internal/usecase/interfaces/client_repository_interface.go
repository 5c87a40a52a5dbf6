package interfaces

import (
	"context"

	"orcamentos_rtv/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Lookups return a zero Client (empty ID) when nothing matches.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateHonorario(ctx context.Context, id string, percent *decimal.Decimal) (entities.Client, error)
}

// IProductRepository abstracts DynamoDB persistence for Product.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Product, error)
}

// ISupplierRepository abstracts the supplier directory.
type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
}
