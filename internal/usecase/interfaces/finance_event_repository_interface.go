package interfaces

import (
	"context"
	"io"

	"orcamentos_rtv/internal/domain/entities"
)

// IFinanceEventRepository abstracts DynamoDB persistence for imported
// finance rows.
type IFinanceEventRepository interface {
	CreateBatch(ctx context.Context, events []entities.FinanceEvent) error
	List(ctx context.Context, clientName string) ([]entities.FinanceEvent, error)
}

// IFinanceSheetParser turns the 8-column finance sheet into events. Returned
// events carry the sheet values and SourceRow only.
type IFinanceSheetParser interface {
	ParseText(text string) ([]entities.FinanceEvent, error)
	ParseXLSX(r io.Reader) ([]entities.FinanceEvent, error)
}
