package interfaces

import (
	"context"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/pricing"
)

type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// BudgetDocument is everything an exporter needs to render a budget.
type BudgetDocument struct {
	Budget      entities.Budget
	Client      entities.Client
	Product     entities.Product
	Version     entities.Version
	Summary     pricing.Summary
	Breakdown   pricing.Breakdown
	Locale      string
	GeneratedAt time.Time
}

type ExportedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// IBudgetExporter renders a budget in one file format.
type IBudgetExporter interface {
	Format() ExportFormat
	Export(ctx context.Context, doc BudgetDocument) (ExportedFile, error)
}
