package pricing

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
)

func item(id string, gross, discount int64) entities.LineItem {
	return entities.LineItem{ID: id, Name: id, Gross: money.Money(gross), Discount: money.Money(discount)}
}

func pct(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var standardRates = Rates{Honorario: pct("15"), Tax: pct("5"), Fee: pct("2")}

func TestSubtotal(t *testing.T) {
	items := []entities.LineItem{item("a", 10000, 0), item("b", 5000, 500)}
	assert.Equal(t, money.Money(14500), Subtotal(items))
	assert.Equal(t, money.Money(0), Subtotal(nil))

	t.Run("order independent", func(t *testing.T) {
		many := make([]entities.LineItem, 0, 50)
		for i := 0; i < 50; i++ {
			many = append(many, item("x", int64(i*137), int64(i%7)))
		}
		want := Subtotal(many)
		r := rand.New(rand.NewSource(42))
		for n := 0; n < 10; n++ {
			r.Shuffle(len(many), func(i, j int) { many[i], many[j] = many[j], many[i] })
			require.Equal(t, want, Subtotal(many))
		}
	})

	t.Run("discount above gross goes negative", func(t *testing.T) {
		assert.Equal(t, money.Money(-100), Subtotal([]entities.LineItem{item("a", 100, 200)}))
	})
}

func TestOptionTotal(t *testing.T) {
	opt := entities.Option{
		ID: "opt-1",
		Phases: []entities.Phase{
			{ID: "pre", Items: []entities.LineItem{item("a", 60000, 0), item("b", 40000, 0)}},
			{ID: "shoot", Items: []entities.LineItem{item("c", 50000, 0)}},
		},
	}
	assert.Equal(t, money.Money(100000), PhaseTotal(opt.Phases[0]))
	assert.Equal(t, money.Money(150000), OptionTotal(opt))

	var nested money.Money
	for _, ph := range opt.Phases {
		for _, it := range ph.Items {
			nested += it.Net()
		}
	}
	assert.Equal(t, nested, OptionTotal(opt))
}

func suppliersFixture() []entities.SupplierQuote {
	return []entities.SupplierQuote{
		{
			ID: "sup-1",
			Options: []entities.Option{
				{ID: "1cam", Phases: []entities.Phase{{ID: "p1", Items: []entities.LineItem{item("i1", 10000, 0), item("i2", 20000, 1000)}}}},
				{ID: "2cam", Phases: []entities.Phase{{ID: "p2", Items: []entities.LineItem{item("i3", 40000, 0)}}}},
			},
		},
		{
			ID: "sup-2",
			Options: []entities.Option{
				{ID: "pkg", Phases: []entities.Phase{{ID: "p3", Items: []entities.LineItem{item("i4", 7000, 0)}}}},
			},
		},
	}
}

func TestSupplierSelectionTotal(t *testing.T) {
	sel := SupplierSelectionTotal(suppliersFixture(), []string{"i2", "i4", "i4", "ghost"})
	assert.Equal(t, money.Money(19000+7000), sel.Total)
	assert.Equal(t, []string{"i2", "i4"}, sel.Matched)
	assert.Equal(t, []string{"ghost"}, sel.Dangling)

	empty := SupplierSelectionTotal(suppliersFixture(), nil)
	assert.Equal(t, money.Money(0), empty.Total)
	assert.Empty(t, empty.Dangling)
}

func TestSelectedOptionsTotal(t *testing.T) {
	sel := SelectedOptionsTotal(suppliersFixture(), []string{"2cam", "pkg", "nope"})
	assert.Equal(t, money.Money(47000), sel.Total)
	assert.Equal(t, []string{"nope"}, sel.Dangling)
}

func TestCompose(t *testing.T) {
	got := Compose(100000, standardRates)
	assert.Equal(t, Totals{Subtotal: 100000, Honorario: 15000, Taxes: 5000, Fees: 2000, Total: 122000}, got)

	t.Run("additivity with rounding", func(t *testing.T) {
		r := Rates{Honorario: pct("50"), Tax: pct("5"), Fee: pct("2")}
		got := Compose(333, r)
		assert.Equal(t, money.Money(167), got.Honorario)
		assert.Equal(t, got.Subtotal+got.Honorario+got.Taxes+got.Fees, got.Total)
		assert.Equal(t, money.PercentageOf(333, r.Tax), got.Taxes)
	})

	t.Run("categories summed", func(t *testing.T) {
		got := ComposeCategories(map[entities.BudgetCategory]money.Money{
			entities.CategoryFilm:  60000,
			entities.CategoryAudio: 40000,
		}, standardRates)
		assert.Equal(t, money.Money(122000), got.Total)
	})
}

func TestComposeCampaigns(t *testing.T) {
	campaigns := []CampaignSubtotal{
		{CampaignID: "a", Subtotal: 333},
		{CampaignID: "b", Subtotal: 333},
	}
	r := Rates{Honorario: pct("50"), Tax: pct("0"), Fee: pct("0")}

	summed := ComposeCampaigns(campaigns, r, entities.ModeSummed)
	assert.Equal(t, money.Money(666), summed.Combined.Subtotal)
	assert.Equal(t, money.Money(333), summed.Combined.Honorario)
	assert.Equal(t, money.Money(999), summed.Combined.Total)
	require.Len(t, summed.Campaigns, 2)
	assert.Equal(t, money.Money(333), summed.Campaigns[0].Subtotal)

	separate := ComposeCampaigns(campaigns, r, entities.ModeSeparate)
	assert.Equal(t, money.Money(167), separate.Campaigns[0].Honorario)
	assert.Equal(t, money.Money(334), separate.Combined.Honorario)
	assert.Equal(t, money.Money(1000), separate.Combined.Total)
	assert.Equal(t, separate.Campaigns[0].Total+separate.Campaigns[1].Total, separate.Combined.Total)

	unknown := ComposeCampaigns(campaigns, r, "")
	assert.Equal(t, entities.ModeSummed, unknown.Mode)
}

func TestResolveRates(t *testing.T) {
	d := Defaults{Honorario: pct("15"), Tax: pct("5"), Fee: pct("2")}

	r, src := ResolveRates(nil, d)
	assert.Equal(t, RateSourceFallback, src)
	assert.True(t, r.Honorario.Equal(pct("15")))

	custom := pct("10")
	r, src = ResolveRates(&entities.Client{ID: "c", HonorarioPercent: &custom}, d)
	assert.Equal(t, RateSourceClient, src)
	assert.True(t, r.Honorario.Equal(custom))
	assert.True(t, r.Tax.Equal(pct("5")))
	assert.True(t, r.Fee.Equal(pct("2")))

	r, src = ResolveRates(&entities.Client{ID: "c"}, d)
	assert.Equal(t, RateSourceFallback, src)
	assert.True(t, r.Honorario.Equal(pct("15")))
}

func TestPrice(t *testing.T) {
	t.Run("film uses item selection over options", func(t *testing.T) {
		p := entities.Payload{
			SchemaVersion: entities.CurrentPayloadSchema,
			Type:          entities.CategoryFilm,
			Mode:          entities.ModeSummed,
			Film: &entities.QuotePayload{Campaigns: []entities.Campaign{{
				ID:                "c1",
				Suppliers:         suppliersFixture(),
				SelectedOptionIDs: []string{"2cam"},
				SelectedItemIDs:   []string{"i1", "missing"},
			}}},
		}
		summary, breakdown := Price(p, standardRates)
		assert.Equal(t, money.Money(10000), breakdown.Subtotal())
		assert.Equal(t, []string{"missing"}, breakdown.Dangling)
		assert.Equal(t, money.Money(12200), summary.Combined.Total)
	})

	t.Run("audio with selected options", func(t *testing.T) {
		p := entities.Payload{
			SchemaVersion: entities.CurrentPayloadSchema,
			Type:          entities.CategoryAudio,
			Mode:          entities.ModeSeparate,
			Audio: &entities.QuotePayload{Campaigns: []entities.Campaign{
				{ID: "c1", Suppliers: suppliersFixture(), SelectedOptionIDs: []string{"1cam"}},
				{ID: "c2", Suppliers: suppliersFixture(), SelectedOptionIDs: []string{"pkg"}},
			}},
		}
		summary, breakdown := Price(p, standardRates)
		assert.Equal(t, money.Money(29000+7000), breakdown.Subtotal())
		require.Len(t, summary.Campaigns, 2)
		assert.Equal(t, Compose(29000, standardRates), summary.Campaigns[0].Totals)
	})

	t.Run("closed caption", func(t *testing.T) {
		p := entities.Payload{
			SchemaVersion: entities.CurrentPayloadSchema,
			Type:          entities.CategoryClosedCaption,
			ClosedCaption: &entities.ClosedCaptionPayload{Items: []entities.LineItem{item("a", 10000, 0), item("b", 5000, 500)}},
		}
		summary, _ := Price(p, standardRates)
		assert.Equal(t, money.Money(14500), summary.Combined.Subtotal)
	})

	t.Run("image sums chosen licenses", func(t *testing.T) {
		p := entities.Payload{
			SchemaVersion: entities.CurrentPayloadSchema,
			Type:          entities.CategoryImage,
			Image: &entities.ImagePayload{Assets: []entities.ImageAsset{
				{ID: "a", LicenseOptions: []entities.LicenseOption{{ID: "web", Price: 3000}, {ID: "tv", Price: 9000}}, ChosenLicenseID: "tv"},
				{ID: "b", LicenseOptions: []entities.LicenseOption{{ID: "web", Price: 1000}}},
				{ID: "c", LicenseOptions: []entities.LicenseOption{{ID: "web", Price: 1000}}, ChosenLicenseID: "gone"},
			}},
		}
		summary, _ := Price(p, standardRates)
		assert.Equal(t, money.Money(9000), summary.Combined.Subtotal)
	})
}
