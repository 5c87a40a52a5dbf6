package pricing

import (
	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
)

// Breakdown is the pre-composition view of a payload.
type Breakdown struct {
	Category  entities.BudgetCategory `json:"category"`
	Campaigns []CampaignSubtotal      `json:"campaigns"`

	// Dangling lists selection ids (items or options) missing from the tree.
	Dangling []string `json:"dangling_ids,omitempty"`
}

func (b Breakdown) Subtotal() money.Money {
	var total money.Money
	for _, c := range b.Campaigns {
		total = money.Add(total, c.Subtotal)
	}
	return total
}

// CampaignSubtotalOf prices one campaign: the item selection when present,
// otherwise the selected options.
func CampaignSubtotalOf(c entities.Campaign) (CampaignSubtotal, []string) {
	var sel Selection
	if len(c.SelectedItemIDs) > 0 {
		sel = SupplierSelectionTotal(c.Suppliers, c.SelectedItemIDs)
	} else {
		sel = SelectedOptionsTotal(c.Suppliers, c.SelectedOptionIDs)
	}
	return CampaignSubtotal{CampaignID: c.ID, Name: c.Name, Subtotal: sel.Total}, sel.Dangling
}

// ImageSubtotal sums the chosen license price of every asset.
func ImageSubtotal(assets []entities.ImageAsset) money.Money {
	var total money.Money
	for _, a := range assets {
		if price, ok := a.ChosenPrice(); ok {
			total = money.Add(total, price)
		}
	}
	return total
}

// BreakdownOf computes the subtotals of a validated payload. Closed-caption
// and image budgets are a single campaign.
func BreakdownOf(p entities.Payload) Breakdown {
	b := Breakdown{Category: p.Type}
	switch p.Type {
	case entities.CategoryFilm, entities.CategoryAudio:
		q := p.Film
		if p.Type == entities.CategoryAudio {
			q = p.Audio
		}
		if q == nil {
			return b
		}
		for _, c := range q.Campaigns {
			cs, dangling := CampaignSubtotalOf(c)
			b.Campaigns = append(b.Campaigns, cs)
			b.Dangling = append(b.Dangling, dangling...)
		}
	case entities.CategoryClosedCaption:
		if p.ClosedCaption != nil {
			b.Campaigns = append(b.Campaigns, CampaignSubtotal{
				CampaignID: string(entities.CategoryClosedCaption),
				Name:       "Closed Caption",
				Subtotal:   Subtotal(p.ClosedCaption.Items),
			})
		}
	case entities.CategoryImage:
		if p.Image != nil {
			b.Campaigns = append(b.Campaigns, CampaignSubtotal{
				CampaignID: string(entities.CategoryImage),
				Name:       "Imagens",
				Subtotal:   ImageSubtotal(p.Image.Assets),
			})
		}
	}
	return b
}

// Price is the full computation used when a version is saved or previewed.
func Price(p entities.Payload, r Rates) (Summary, Breakdown) {
	b := BreakdownOf(p)
	mode := p.Mode
	if !mode.IsValid() {
		mode = entities.ModeSummed
	}
	return ComposeCampaigns(b.Campaigns, r, mode), b
}
