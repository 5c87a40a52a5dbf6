package export

import (
	"context"
	"fmt"

	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const budgetSheet = "Orçamento"

// XLSXExporter renders a single-sheet workbook with numeric money cells.
type XLSXExporter struct{}

var _ interfaces.IBudgetExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) Format() interfaces.ExportFormat { return interfaces.ExportXLSX }

func (e *XLSXExporter) Export(_ context.Context, doc interfaces.BudgetDocument) (interfaces.ExportedFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", budgetSheet); err != nil {
		return interfaces.ExportedFile{}, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return interfaces.ExportedFile{}, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return interfaces.ExportedFile{}, err
	}
	boldMoneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return interfaces.ExportedFile{}, err
	}

	w := &sheetWriter{f: f, sheet: budgetSheet, row: 1}
	for _, h := range headerFields(doc) {
		w.set(1, h.Label, boldStyle)
		w.set(2, h.Value, 0)
		w.next()
	}
	w.next()

	for i, h := range detailHeader {
		w.set(i+1, h, boldStyle)
	}
	w.next()
	for _, l := range detailLines(doc.Version.Payload) {
		w.set(1, l.Campaign, 0)
		w.set(2, l.Supplier, 0)
		w.set(3, l.Description, 0)
		w.set(4, amount(l.Gross), moneyStyle)
		w.set(5, amount(l.Discount), moneyStyle)
		w.set(6, amount(l.Net), moneyStyle)
		w.next()
	}
	w.next()

	for _, t := range totalLines(doc.Summary) {
		if t.Bold {
			w.set(5, t.Label, boldStyle)
			w.set(6, amount(t.Value), boldMoneyStyle)
		} else {
			w.set(5, t.Label, 0)
			w.set(6, amount(t.Value), moneyStyle)
		}
		w.next()
	}
	if w.err != nil {
		return interfaces.ExportedFile{}, w.err
	}

	if err := f.SetColWidth(budgetSheet, "A", "C", 28); err != nil {
		return interfaces.ExportedFile{}, err
	}
	if err := f.SetColWidth(budgetSheet, "D", "F", 16); err != nil {
		return interfaces.ExportedFile{}, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return interfaces.ExportedFile{}, fmt.Errorf("writing workbook: %w", err)
	}
	return interfaces.ExportedFile{
		FileName:    fileName(doc, interfaces.ExportXLSX),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func amount(m money.Money) float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// sheetWriter keeps the first error so the layout code stays linear.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) set(col int, value any, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}
	if w.err = w.f.SetCellValue(w.sheet, cell, value); w.err != nil {
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(w.sheet, cell, cell, style)
	}
}

func (w *sheetWriter) next() { w.row++ }
