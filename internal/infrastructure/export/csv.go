package export

import (
	"bytes"
	"context"
	"encoding/csv"

	"orcamentos_rtv/internal/usecase/interfaces"
)

// CSVExporter writes amounts as plain decimals ("1234.56") so spreadsheets
// can sum them regardless of locale.
type CSVExporter struct {
	Comma rune
}

var _ interfaces.IBudgetExporter = (*CSVExporter)(nil)

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{Comma: ';'}
}

func (e *CSVExporter) Format() interfaces.ExportFormat { return interfaces.ExportCSV }

func (e *CSVExporter) Export(_ context.Context, doc interfaces.BudgetDocument) (interfaces.ExportedFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if e.Comma != 0 {
		w.Comma = e.Comma
	}

	var records [][]string
	for _, f := range headerFields(doc) {
		records = append(records, []string{f.Label, f.Value})
	}
	records = append(records, []string{}, detailHeader)
	for _, l := range detailLines(doc.Version.Payload) {
		records = append(records, []string{
			l.Campaign, l.Supplier, l.Description,
			l.Gross.String(), l.Discount.String(), l.Net.String(),
		})
	}
	records = append(records, []string{}, []string{"Resumo", "Valor"})
	for _, t := range totalLines(doc.Summary) {
		records = append(records, []string{t.Label, t.Value.String()})
	}

	if err := w.WriteAll(records); err != nil {
		return interfaces.ExportedFile{}, err
	}
	return interfaces.ExportedFile{
		FileName:    fileName(doc, interfaces.ExportCSV),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
