package export

import (
	"fmt"
	"strings"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/domain/pricing"
	"orcamentos_rtv/internal/usecase/interfaces"
)

// detailLine is one priced row as it appears in every export format.
type detailLine struct {
	Campaign    string
	Supplier    string
	Description string
	Gross       money.Money
	Discount    money.Money
	Net         money.Money
}

type totalLine struct {
	Label string
	Value money.Money
	Bold  bool
}

type headerField struct {
	Label string
	Value string
}

var categoryLabels = map[entities.BudgetCategory]string{
	entities.CategoryFilm:          "Filme",
	entities.CategoryAudio:         "Áudio",
	entities.CategoryClosedCaption: "Closed Caption",
	entities.CategoryImage:         "Imagem",
}

var statusLabels = map[entities.BudgetStatus]string{
	entities.BudgetStatusDraft:         "Rascunho",
	entities.BudgetStatusSentToAccount: "Enviado ao atendimento",
	entities.BudgetStatusApproved:      "Aprovado",
}

var detailHeader = []string{"Campanha", "Fornecedor", "Descrição", "Valor bruto", "Desconto", "Valor líquido"}

func fileName(doc interfaces.BudgetDocument, format interfaces.ExportFormat) string {
	id := doc.Budget.DisplayID
	if id == "" {
		id = doc.Budget.ID
	}
	return fmt.Sprintf("%s_v%d.%s", id, doc.Version.VersionNumber, format)
}

func headerFields(doc interfaces.BudgetDocument) []headerField {
	return []headerField{
		{"Orçamento", doc.Budget.DisplayID},
		{"Título", doc.Budget.Title},
		{"Cliente", doc.Client.Name},
		{"Produto", doc.Product.Name},
		{"Tipo", categoryLabels[doc.Budget.Type]},
		{"Status", statusLabels[doc.Budget.Status]},
		{"Versão", fmt.Sprintf("%d", doc.Version.VersionNumber)},
		{"Gerado em", doc.GeneratedAt.Format("02/01/2006 15:04")},
	}
}

// detailLines lists the rows that make up the subtotal: selected items for
// film and audio, every item for closed caption and the chosen license of
// each image asset.
func detailLines(p entities.Payload) []detailLine {
	var lines []detailLine
	switch p.Type {
	case entities.CategoryFilm, entities.CategoryAudio:
		q := p.Film
		if p.Type == entities.CategoryAudio {
			q = p.Audio
		}
		if q == nil {
			return nil
		}
		for _, c := range q.Campaigns {
			lines = append(lines, campaignLines(c)...)
		}
	case entities.CategoryClosedCaption:
		if p.ClosedCaption == nil {
			return nil
		}
		for _, it := range p.ClosedCaption.Items {
			lines = append(lines, itemLine("", "", it.Name, it))
		}
	case entities.CategoryImage:
		if p.Image == nil {
			return nil
		}
		for _, a := range p.Image.Assets {
			price, ok := a.ChosenPrice()
			if !ok {
				continue
			}
			desc := a.Name
			for _, opt := range a.LicenseOptions {
				if opt.ID == a.ChosenLicenseID && opt.Label != "" {
					desc += " (" + opt.Label + ")"
				}
			}
			lines = append(lines, detailLine{Supplier: a.Provider, Description: desc, Gross: price, Net: price})
		}
	}
	return lines
}

func campaignLines(c entities.Campaign) []detailLine {
	items := toSet(c.SelectedItemIDs)
	options := toSet(c.SelectedOptionIDs)
	byItem := len(items) > 0

	var lines []detailLine
	for _, s := range c.Suppliers {
		for _, o := range s.Options {
			if !byItem {
				if _, ok := options[o.ID]; !ok {
					continue
				}
			}
			for _, ph := range o.Phases {
				for _, it := range ph.Items {
					if byItem {
						if _, ok := items[it.ID]; !ok {
							continue
						}
					}
					desc := strings.Join(nonEmpty(o.Name, ph.Name, it.Name), " / ")
					lines = append(lines, itemLine(c.Name, s.Name, desc, it))
				}
			}
		}
	}
	return lines
}

func itemLine(campaign, supplier, desc string, it entities.LineItem) detailLine {
	return detailLine{
		Campaign:    campaign,
		Supplier:    supplier,
		Description: desc,
		Gross:       it.Gross,
		Discount:    it.Discount,
		Net:         it.Net(),
	}
}

func totalLines(s pricing.Summary) []totalLine {
	var lines []totalLine
	if s.Mode == entities.ModeSeparate && len(s.Campaigns) > 1 {
		for _, c := range s.Campaigns {
			lines = append(lines, totalLine{Label: "Total " + c.Name, Value: c.Total})
		}
	}
	c := s.Combined
	return append(lines,
		totalLine{Label: "Subtotal", Value: c.Subtotal},
		totalLine{Label: fmt.Sprintf("Honorário (%s%%)", s.Rates.Honorario.String()), Value: c.Honorario},
		totalLine{Label: fmt.Sprintf("Impostos (%s%%)", s.Rates.Tax.String()), Value: c.Taxes},
		totalLine{Label: fmt.Sprintf("Taxas (%s%%)", s.Rates.Fee.String()), Value: c.Fees},
		totalLine{Label: "Total geral", Value: c.Total, Bold: true},
	)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
