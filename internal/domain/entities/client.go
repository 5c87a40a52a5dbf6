package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is an advertiser. HonorarioPercent, when set, overrides the
// configured fallback honorário for every budget of the client.
type Client struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Document         string           `json:"document,omitempty"`
	HonorarioPercent *decimal.Decimal `json:"honorario_percent,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Product belongs to a client (e.g. a brand or line being advertised).
type Product struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Supplier (fornecedor) is the directory record a SupplierQuote may point to.
type Supplier struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Contact   string         `json:"contact,omitempty"`
	Email     string         `json:"email,omitempty"`
	Category  BudgetCategory `json:"category,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
