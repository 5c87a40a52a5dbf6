package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"orcamentos_rtv/internal/domain/money"
)

// FinanceEvent is one imported row of the agency's finance sheet
// (Client, AP, Description, Supplier, Supplier Value, Honorarium %,
// Agency Honorarium, Total).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_name-index): client_name
type FinanceEvent struct {
	ID               string          `json:"id"`
	ImportID         string          `json:"import_id"`
	ClientName       string          `json:"client_name"`
	AP               string          `json:"ap"`
	Description      string          `json:"description"`
	SupplierName     string          `json:"supplier_name"`
	SupplierValue    money.Money     `json:"supplier_value"`
	HonorarioPercent decimal.Decimal `json:"honorario_percent"`
	AgencyHonorario  money.Money     `json:"agency_honorario"`
	Total            money.Money     `json:"total"`
	SourceRow        int             `json:"source_row"`
	ImportedBy       string          `json:"imported_by"`
	CreatedAt        time.Time       `json:"created_at"`
}
