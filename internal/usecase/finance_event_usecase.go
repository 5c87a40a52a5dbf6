package usecase

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrEmptyImport           = errors.New("nothing to import")
	ErrUnsupportedImportFile = errors.New("unsupported import file")
	ErrPDFImportNotSupported = errors.New("pdf import is not supported, export the sheet as xlsx or paste it as text")
	ErrInvalidFinanceSheet   = errors.New("invalid finance sheet")
)

type ImportResult struct {
	ImportID string                  `json:"import_id"`
	Imported int                     `json:"imported"`
	Events   []entities.FinanceEvent `json:"events"`
}

// IFinanceEventUseCase exposes the finance sheet import.
type IFinanceEventUseCase interface {
	ImportText(ctx context.Context, text, importedBy string) (ImportResult, error)
	ImportFile(ctx context.Context, fileName string, r io.Reader, importedBy string) (ImportResult, error)
	ListEvents(ctx context.Context, clientName string) ([]entities.FinanceEvent, error)
}

type FinanceEventUseCase struct {
	repo   interfaces.IFinanceEventRepository
	parser interfaces.IFinanceSheetParser
	log    *logger.Logger
	now    func() time.Time
}

var _ IFinanceEventUseCase = (*FinanceEventUseCase)(nil)

func NewFinanceEventUseCase(repo interfaces.IFinanceEventRepository, parser interfaces.IFinanceSheetParser, log *logger.Logger) *FinanceEventUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &FinanceEventUseCase{repo: repo, parser: parser, log: log, now: utcNow}
}

// ImportText accepts rows pasted from a spreadsheet (tab or semicolon
// separated).
func (u *FinanceEventUseCase) ImportText(ctx context.Context, text, importedBy string) (ImportResult, error) {
	if strings.TrimSpace(text) == "" {
		return ImportResult{}, ErrEmptyImport
	}
	events, err := u.parser.ParseText(text)
	if err != nil {
		return ImportResult{}, errors.Join(ErrInvalidFinanceSheet, err)
	}
	return u.store(ctx, events, importedBy, "text")
}

// ImportFile dispatches on the file extension. PDF statements are refused.
func (u *FinanceEventUseCase) ImportFile(ctx context.Context, fileName string, r io.Reader, importedBy string) (ImportResult, error) {
	var (
		events []entities.FinanceEvent
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".xlsx":
		events, err = u.parser.ParseXLSX(r)
	case ".csv", ".tsv", ".txt":
		var raw []byte
		if raw, err = io.ReadAll(r); err != nil {
			return ImportResult{}, err
		}
		if strings.TrimSpace(string(raw)) == "" {
			return ImportResult{}, ErrEmptyImport
		}
		events, err = u.parser.ParseText(string(raw))
	case ".pdf":
		return ImportResult{}, ErrPDFImportNotSupported
	default:
		return ImportResult{}, ErrUnsupportedImportFile
	}
	if err != nil {
		return ImportResult{}, errors.Join(ErrInvalidFinanceSheet, err)
	}
	return u.store(ctx, events, importedBy, filepath.Base(fileName))
}

func (u *FinanceEventUseCase) store(ctx context.Context, events []entities.FinanceEvent, importedBy, source string) (ImportResult, error) {
	if len(events) == 0 {
		return ImportResult{}, ErrEmptyImport
	}

	importID := uuid.NewString()
	now := u.now()
	importedBy = strings.TrimSpace(importedBy)
	for i := range events {
		events[i].ID = uuid.NewString()
		events[i].ImportID = importID
		events[i].ImportedBy = importedBy
		events[i].CreatedAt = now
	}

	if err := u.repo.CreateBatch(ctx, events); err != nil {
		return ImportResult{}, err
	}

	u.log.Info(ctx, "finance events imported", map[string]any{
		"import_id": importID,
		"rows":      len(events),
		"source":    source,
	})
	return ImportResult{ImportID: importID, Imported: len(events), Events: events}, nil
}

func (u *FinanceEventUseCase) ListEvents(ctx context.Context, clientName string) ([]entities.FinanceEvent, error) {
	return u.repo.List(ctx, strings.TrimSpace(clientName))
}
