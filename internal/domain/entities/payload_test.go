package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcamentos_rtv/internal/domain/money"
)

func filmPayload() Payload {
	return Payload{
		SchemaVersion: CurrentPayloadSchema,
		Type:          CategoryFilm,
		Mode:          ModeSummed,
		Film: &QuotePayload{Campaigns: []Campaign{{
			ID:   "c1",
			Name: "Verão",
			Suppliers: []SupplierQuote{{
				ID:   "s1",
				Name: "Produtora",
				Options: []Option{{
					ID: "o1",
					Phases: []Phase{{
						ID:    "p1",
						Items: []LineItem{{ID: "i1", Gross: 10000, Discount: 500}},
					}},
				}},
			}},
			SelectedOptionIDs: []string{"o1"},
		}}},
	}
}

func TestPayloadValidate(t *testing.T) {
	t.Run("valid film payload", func(t *testing.T) {
		require.NoError(t, filmPayload().Validate())
	})

	t.Run("section does not match type", func(t *testing.T) {
		p := filmPayload()
		p.Type = CategoryAudio
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPayload))
	})

	t.Run("two sections", func(t *testing.T) {
		p := filmPayload()
		p.Image = &ImagePayload{}
		assert.ErrorIs(t, p.Validate(), ErrInvalidPayload)
	})

	t.Run("negative gross", func(t *testing.T) {
		p := filmPayload()
		p.Film.Campaigns[0].Suppliers[0].Options[0].Phases[0].Items[0].Gross = -1
		assert.ErrorIs(t, p.Validate(), ErrInvalidPayload)
	})

	t.Run("negative license price", func(t *testing.T) {
		p := Payload{
			SchemaVersion: CurrentPayloadSchema,
			Type:          CategoryImage,
			Mode:          ModeSummed,
			Image: &ImagePayload{Assets: []ImageAsset{{
				ID:             "a1",
				LicenseOptions: []LicenseOption{{ID: "l1", Price: -100}},
			}}},
		}
		assert.ErrorIs(t, p.Validate(), ErrInvalidPayload)
	})

	t.Run("unknown mode", func(t *testing.T) {
		p := filmPayload()
		p.Mode = "stacked"
		assert.ErrorIs(t, p.Validate(), ErrInvalidPayload)
	})

	t.Run("normalize fills defaults", func(t *testing.T) {
		p := Payload{Type: CategoryClosedCaption, ClosedCaption: &ClosedCaptionPayload{}}.Normalize()
		assert.Equal(t, CurrentPayloadSchema, p.SchemaVersion)
		assert.Equal(t, ModeSummed, p.Mode)
		assert.NoError(t, p.Validate())
	})
}

func TestImageAssetChosenPrice(t *testing.T) {
	a := ImageAsset{LicenseOptions: []LicenseOption{{ID: "web", Price: 5000}, {ID: "tv", Price: 20000}}}

	_, ok := a.ChosenPrice()
	assert.False(t, ok)

	a.ChosenLicenseID = "tv"
	price, ok := a.ChosenPrice()
	assert.True(t, ok)
	assert.Equal(t, money.Money(20000), price)

	a.ChosenLicenseID = "gone"
	_, ok = a.ChosenPrice()
	assert.False(t, ok)
}

func TestMigratePayload(t *testing.T) {
	t.Run("current schema passes through", func(t *testing.T) {
		raw := []byte(`{"schema_version":1,"type":"closed_caption","closed_caption":{"items":[{"id":"i1","gross_value":1000,"discount":0}]}}`)
		p, err := MigratePayload(raw)
		require.NoError(t, err)
		assert.Equal(t, ModeSummed, p.Mode)
		require.NotNil(t, p.ClosedCaption)
		assert.Equal(t, money.Money(1000), p.ClosedCaption.Items[0].Gross)
	})

	t.Run("unsupported schema", func(t *testing.T) {
		_, err := MigratePayload([]byte(`{"schema_version":7}`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := MigratePayload([]byte(`nope`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("legacy film blob", func(t *testing.T) {
		raw := []byte(`{
			"tipo": "filme",
			"modo": "separado",
			"observacoes": "cliente pediu 2 opções",
			"campanhas": [{
				"id": 1,
				"nome": "Natal",
				"fornecedores": [{
					"id": 10,
					"nome": "Produtora X",
					"opcoes": [{
						"id": "op-a",
						"fases": [{"id": 100, "nome": "Filmagem", "itens": [
							{"id": 1000, "nome": "Diária", "valor": 1500.5, "desconto": "R$ 100,25"},
							{"id": 1001, "nome": "Locação", "valor": "abc"}
						]}]
					}]
				}],
				"opcoesSelecionadas": ["op-a"]
			}]
		}`)
		p, err := MigratePayload(raw)
		require.NoError(t, err)
		require.NoError(t, p.Validate())

		assert.Equal(t, CategoryFilm, p.Type)
		assert.Equal(t, ModeSeparate, p.Mode)
		assert.Equal(t, "cliente pediu 2 opções", p.Notes)
		require.Len(t, p.Film.Campaigns, 1)

		c := p.Film.Campaigns[0]
		assert.Equal(t, "1", c.ID)
		assert.Equal(t, []string{"op-a"}, c.SelectedOptionIDs)
		items := c.Suppliers[0].Options[0].Phases[0].Items
		require.Len(t, items, 2)
		assert.Equal(t, "1000", items[0].ID)
		assert.Equal(t, money.Money(150050), items[0].Gross)
		assert.Equal(t, money.Money(10025), items[0].Discount)
		assert.Equal(t, money.Money(0), items[1].Gross)
	})

	t.Run("legacy single campaign tree", func(t *testing.T) {
		raw := []byte(`{"tipo":"audio","fornecedores":[{"id":"s","nome":"Estúdio","opcoes":[]}],"itensSelecionados":[5]}`)
		p, err := MigratePayload(raw)
		require.NoError(t, err)
		require.NotNil(t, p.Audio)
		require.Len(t, p.Audio.Campaigns, 1)
		assert.Equal(t, "default", p.Audio.Campaigns[0].ID)
		assert.Equal(t, []string{"5"}, p.Audio.Campaigns[0].SelectedItemIDs)
	})

	t.Run("legacy image blob", func(t *testing.T) {
		raw := []byte(`{"tipo":"imagem","imagens":[{"id":"a","nome":"Praia","licencas":[{"id":"l1","nome":"Web","preco":"1.200,00"}],"licencaEscolhida":"l1"}]}`)
		p, err := MigratePayload(raw)
		require.NoError(t, err)
		require.NotNil(t, p.Image)
		price, ok := p.Image.Assets[0].ChosenPrice()
		assert.True(t, ok)
		assert.Equal(t, money.Money(120000), price)
	})

	t.Run("legacy unknown tipo", func(t *testing.T) {
		_, err := MigratePayload([]byte(`{"tipo":"radio"}`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}
