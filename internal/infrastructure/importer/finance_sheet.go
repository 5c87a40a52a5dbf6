package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// Column order of the agency finance sheet.
const (
	colClient = iota
	colAP
	colDescription
	colSupplier
	colSupplierValue
	colHonorarioPercent
	colAgencyHonorario
	colTotal
	sheetColumns
)

var ErrNoRows = errors.New("sheet has no data rows")

var headerNames = map[string]bool{
	"cliente": true,
	"client":  true,
}

// FinanceSheetParser reads the fixed 8-column finance sheet from pasted text
// or an xlsx workbook. Money cells are parsed leniently: anything unreadable
// becomes zero.
type FinanceSheetParser struct{}

var _ interfaces.IFinanceSheetParser = (*FinanceSheetParser)(nil)

func NewFinanceSheetParser() *FinanceSheetParser { return &FinanceSheetParser{} }

// ParseText splits each line on tabs, or on semicolons when the line has no
// tab.
func (p *FinanceSheetParser) ParseText(text string) ([]entities.FinanceEvent, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		sep := ";"
		if strings.Contains(line, "\t") {
			sep = "\t"
		}
		rows = append(rows, strings.Split(line, sep))
	}
	return parseRows(rows)
}

// ParseXLSX reads the first sheet of the workbook.
func (p *FinanceSheetParser) ParseXLSX(r io.Reader) ([]entities.FinanceEvent, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]entities.FinanceEvent, error) {
	var events []entities.FinanceEvent
	seenData := false
	for i, raw := range rows {
		cells := normalizeRow(raw)
		if isBlank(cells) {
			continue
		}
		if !seenData && headerNames[strings.ToLower(cells[colClient])] {
			seenData = true
			continue
		}
		seenData = true

		if cells[colClient] == "" {
			return nil, fmt.Errorf("row %d: client is empty", i+1)
		}
		events = append(events, eventFromCells(cells, i+1))
	}
	if len(events) == 0 {
		return nil, ErrNoRows
	}
	return events, nil
}

// eventFromCells fills a blank honorarium with supplier value × percent and
// a blank total with supplier value + honorarium.
func eventFromCells(cells []string, row int) entities.FinanceEvent {
	e := entities.FinanceEvent{
		ClientName:       cells[colClient],
		AP:               cells[colAP],
		Description:      cells[colDescription],
		SupplierName:     cells[colSupplier],
		SupplierValue:    money.ParseLenient(cells[colSupplierValue]),
		HonorarioPercent: money.ParsePercent(cells[colHonorarioPercent]),
		SourceRow:        row,
	}

	if cells[colAgencyHonorario] == "" {
		e.AgencyHonorario = money.PercentageOf(e.SupplierValue, e.HonorarioPercent)
	} else {
		e.AgencyHonorario = money.ParseLenient(cells[colAgencyHonorario])
	}
	if cells[colTotal] == "" {
		e.Total = money.Add(e.SupplierValue, e.AgencyHonorario)
	} else {
		e.Total = money.ParseLenient(cells[colTotal])
	}
	return e
}

func normalizeRow(raw []string) []string {
	cells := make([]string, sheetColumns)
	for i := 0; i < len(raw) && i < sheetColumns; i++ {
		cells[i] = strings.TrimSpace(raw[i])
	}
	return cells
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
