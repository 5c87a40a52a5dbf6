package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"orcamentos_rtv/internal/domain/entities"
)

type CreateClientRequest struct {
	Name             string           `json:"name" binding:"required"`
	Document         string           `json:"document"`
	HonorarioPercent *decimal.Decimal `json:"honorario_percent"`
}

// UpdateHonorarioRequest sets the client's honorário. A null or missing
// percent goes back to the configured fallback.
type UpdateHonorarioRequest struct {
	HonorarioPercent *decimal.Decimal `json:"honorario_percent"`
}

type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateSupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	Contact  string `json:"contact"`
	Email    string `json:"email" binding:"omitempty,email"`
	Category string `json:"category" binding:"omitempty,budget_category"`
}

func (r CreateSupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Name:     strings.TrimSpace(r.Name),
		Contact:  strings.TrimSpace(r.Contact),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Category: entities.BudgetCategory(r.Category),
	}
}
