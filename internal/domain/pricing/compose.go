package pricing

import (
	"github.com/shopspring/decimal"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
)

// Rates are resolved percentages (15 means 15%). The composer has no
// defaults of its own; see ResolveRates.
type Rates struct {
	Honorario decimal.Decimal `json:"honorario_percent"`
	Tax       decimal.Decimal `json:"tax_percent"`
	Fee       decimal.Decimal `json:"fee_percent"`
}

// Totals is the composed breakdown of one subtotal.
type Totals struct {
	Subtotal  money.Money `json:"subtotal"`
	Honorario money.Money `json:"honorario"`
	Taxes     money.Money `json:"taxes"`
	Fees      money.Money `json:"fees"`
	Total     money.Money `json:"total"`
}

func (t Totals) add(o Totals) Totals {
	return Totals{
		Subtotal:  t.Subtotal + o.Subtotal,
		Honorario: t.Honorario + o.Honorario,
		Taxes:     t.Taxes + o.Taxes,
		Fees:      t.Fees + o.Fees,
		Total:     t.Total + o.Total,
	}
}

// Compose applies the percentages to one subtotal:
// total = subtotal + honorário + taxes + fees.
func Compose(subtotal money.Money, r Rates) Totals {
	t := Totals{
		Subtotal:  subtotal,
		Honorario: money.PercentageOf(subtotal, r.Honorario),
		Taxes:     money.PercentageOf(subtotal, r.Tax),
		Fees:      money.PercentageOf(subtotal, r.Fee),
	}
	t.Total = money.Sum(t.Subtotal, t.Honorario, t.Taxes, t.Fees)
	return t
}

// ComposeCategories is the "summed" composition over per-category subtotals.
func ComposeCategories(subtotals map[entities.BudgetCategory]money.Money, r Rates) Totals {
	var sum money.Money
	for _, v := range subtotals {
		sum = money.Add(sum, v)
	}
	return Compose(sum, r)
}

// CampaignSubtotal is the pre-composition subtotal of one campaign.
type CampaignSubtotal struct {
	CampaignID string      `json:"campaign_id"`
	Name       string      `json:"name"`
	Subtotal   money.Money `json:"subtotal"`
}

type CampaignTotals struct {
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Totals
}

// Summary is the composed result for a whole budget.
type Summary struct {
	Mode      entities.PresentationMode `json:"mode"`
	Rates     Rates                     `json:"rates"`
	Campaigns []CampaignTotals          `json:"campaigns"`
	Combined  Totals                    `json:"combined"`
}

// ComposeCampaigns composes campaign subtotals under the given mode.
//
// summed: the campaign subtotals are added and composed once; per-campaign
// rows only carry their subtotal.
// separate: each campaign is composed on its own and Combined is the sum of
// those displayed totals, so rounding happens per campaign.
func ComposeCampaigns(campaigns []CampaignSubtotal, r Rates, mode entities.PresentationMode) Summary {
	s := Summary{Mode: mode, Rates: r, Campaigns: make([]CampaignTotals, 0, len(campaigns))}

	if mode == entities.ModeSeparate {
		for _, c := range campaigns {
			t := Compose(c.Subtotal, r)
			s.Campaigns = append(s.Campaigns, CampaignTotals{CampaignID: c.CampaignID, Name: c.Name, Totals: t})
			s.Combined = s.Combined.add(t)
		}
		return s
	}

	s.Mode = entities.ModeSummed
	var sum money.Money
	for _, c := range campaigns {
		sum = money.Add(sum, c.Subtotal)
		s.Campaigns = append(s.Campaigns, CampaignTotals{
			CampaignID: c.CampaignID,
			Name:       c.Name,
			Totals:     Totals{Subtotal: c.Subtotal},
		})
	}
	s.Combined = Compose(sum, r)
	return s
}
