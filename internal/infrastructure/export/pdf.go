package export

import (
	"context"
	"fmt"

	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFExporter renders the budget for the client-facing document. Amounts use
// the document locale.
type PDFExporter struct{}

var _ interfaces.IBudgetExporter = (*PDFExporter)(nil)

func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

func (e *PDFExporter) Format() interfaces.ExportFormat { return interfaces.ExportPDF }

func (e *PDFExporter) Export(_ context.Context, doc interfaces.BudgetDocument) (interfaces.ExportedFile, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)
	format := func(v money.Money) string { return money.Format(v, doc.Locale) }

	m.AddRow(14,
		text.NewCol(12, "Orçamento "+doc.Budget.DisplayID, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	for _, h := range headerFields(doc) {
		if h.Value == "" {
			continue
		}
		m.AddRow(6,
			text.NewCol(3, h.Label, props.Text{Size: 9, Style: fontstyle.Bold}),
			text.NewCol(9, h.Value, props.Text{Size: 9}),
		)
	}
	m.AddRow(6, col.New(12))

	headerProps := props.Text{Size: 8, Style: fontstyle.Bold}
	m.AddRow(8,
		text.NewCol(2, detailHeader[0], headerProps),
		text.NewCol(2, detailHeader[1], headerProps),
		text.NewCol(4, detailHeader[2], headerProps),
		text.NewCol(2, detailHeader[4], props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, detailHeader[5], props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, l := range detailLines(doc.Version.Payload) {
		m.AddRow(7,
			text.NewCol(2, l.Campaign, props.Text{Size: 8}),
			text.NewCol(2, l.Supplier, props.Text{Size: 8}),
			text.NewCol(4, l.Description, props.Text{Size: 8}),
			text.NewCol(2, format(l.Discount), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, format(l.Net), props.Text{Size: 8, Align: align.Right}),
		)
	}
	m.AddRow(6, col.New(12))

	for _, t := range totalLines(doc.Summary) {
		style := fontstyle.Normal
		if t.Bold {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(6),
			text.NewCol(3, t.Label, props.Text{Size: 9, Style: style}),
			text.NewCol(3, format(t.Value), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	if notes := doc.Version.Payload.Notes; notes != "" {
		m.AddRow(6, col.New(12))
		m.AddRow(12, text.NewCol(12, "Observações: "+notes, props.Text{Size: 8}))
	}

	out, err := m.Generate()
	if err != nil {
		return interfaces.ExportedFile{}, fmt.Errorf("generating pdf: %w", err)
	}
	return interfaces.ExportedFile{
		FileName:    fileName(doc, interfaces.ExportPDF),
		ContentType: "application/pdf",
		Data:        out.GetBytes(),
	}, nil
}
