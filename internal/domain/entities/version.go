package entities

import (
	"time"

	"orcamentos_rtv/internal/domain/money"
)

// Version is an immutable snapshot of a budget's form data. Saving always
// appends a new Version with VersionNumber = previous + 1.
//
// Storage model (DynamoDB):
//   - PK: budget_id, SK: version_number
type Version struct {
	ID            string      `json:"id"`
	BudgetID      string      `json:"budget_id"`
	VersionNumber int         `json:"version_number"`
	Payload       Payload     `json:"payload"`
	TotalGeneral  money.Money `json:"total_general"`
	Autosave      bool        `json:"autosave"`
	CreatedBy     string      `json:"created_by"`
	CreatedAt     time.Time   `json:"created_at"`
}
