package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"orcamentos_rtv/internal/domain/money"
)

// MigratePayload decodes a stored payload of any known schema and returns it
// upgraded to CurrentPayloadSchema. Payloads without schema_version are the
// legacy untyped form blobs (schema 0).
func MigratePayload(raw []byte) (Payload, error) {
	var probe struct {
		SchemaVersion *int `json:"schema_version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if probe.SchemaVersion == nil {
		return migrateV0(raw)
	}
	if *probe.SchemaVersion != CurrentPayloadSchema {
		return Payload{}, fmt.Errorf("%w: unsupported schema_version %d", ErrInvalidPayload, *probe.SchemaVersion)
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return p.Normalize(), nil
}

type legacyPayload struct {
	Tipo               string           `json:"tipo"`
	Modo               string           `json:"modo"`
	Observacoes        string           `json:"observacoes"`
	Campanhas          []legacyCampaign `json:"campanhas"`
	Fornecedores       []legacySupplier `json:"fornecedores"`
	ItensSelecionados  []legacyID       `json:"itensSelecionados"`
	OpcoesSelecionadas []legacyID       `json:"opcoesSelecionadas"`
	Itens              []legacyItem     `json:"itens"`
	Imagens            []legacyImage    `json:"imagens"`
}

type legacyCampaign struct {
	ID                 legacyID         `json:"id"`
	Nome               string           `json:"nome"`
	Fornecedores       []legacySupplier `json:"fornecedores"`
	ItensSelecionados  []legacyID       `json:"itensSelecionados"`
	OpcoesSelecionadas []legacyID       `json:"opcoesSelecionadas"`
}

type legacySupplier struct {
	ID      legacyID       `json:"id"`
	Nome    string         `json:"nome"`
	Contato string         `json:"contato"`
	Opcoes  []legacyOption `json:"opcoes"`
}

type legacyOption struct {
	ID    legacyID      `json:"id"`
	Nome  string        `json:"nome"`
	Fases []legacyPhase `json:"fases"`
}

type legacyPhase struct {
	ID    legacyID     `json:"id"`
	Nome  string       `json:"nome"`
	Itens []legacyItem `json:"itens"`
}

type legacyItem struct {
	ID       legacyID     `json:"id"`
	Nome     string       `json:"nome"`
	Valor    legacyAmount `json:"valor"`
	Desconto legacyAmount `json:"desconto"`
}

type legacyImage struct {
	ID               legacyID        `json:"id"`
	Nome             string          `json:"nome"`
	URL              string          `json:"url"`
	Fornecedor       string          `json:"fornecedor"`
	Tipo             string          `json:"tipo"`
	Licencas         []legacyLicense `json:"licencas"`
	LicencaEscolhida legacyID        `json:"licencaEscolhida"`
}

type legacyLicense struct {
	ID    legacyID     `json:"id"`
	Nome  string       `json:"nome"`
	Preco legacyAmount `json:"preco"`
}

// legacyID accepts ids stored either as strings or as numbers.
type legacyID string

func (id *legacyID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = legacyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = legacyID(n.String())
	return nil
}

// legacyAmount is a value in reais, stored as a number or as a formatted
// string. Anything unreadable becomes zero, like the old form fields did.
type legacyAmount money.Money

func (a *legacyAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			*a = 0
			return nil
		}
		*a = legacyAmount(money.FromDecimal(d))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = legacyAmount(money.ParseLenient(s))
		return nil
	}
	*a = 0
	return nil
}

func migrateV0(raw []byte) (Payload, error) {
	var lp legacyPayload
	if err := json.Unmarshal(raw, &lp); err != nil {
		return Payload{}, fmt.Errorf("%w: legacy payload: %v", ErrInvalidPayload, err)
	}

	category, ok := legacyCategory(lp.Tipo)
	if !ok {
		return Payload{}, fmt.Errorf("%w: legacy payload has unknown tipo %q", ErrInvalidPayload, lp.Tipo)
	}

	p := Payload{
		SchemaVersion: CurrentPayloadSchema,
		Type:          category,
		Mode:          ModeSummed,
		Notes:         lp.Observacoes,
	}
	if m := strings.ToLower(strings.TrimSpace(lp.Modo)); m == "separado" || m == "separate" {
		p.Mode = ModeSeparate
	}

	switch category {
	case CategoryFilm, CategoryAudio:
		q := &QuotePayload{}
		for _, c := range lp.Campanhas {
			q.Campaigns = append(q.Campaigns, Campaign{
				ID:                string(c.ID),
				Name:              c.Nome,
				Suppliers:         convertLegacySuppliers(c.Fornecedores),
				SelectedOptionIDs: convertLegacyIDs(c.OpcoesSelecionadas),
				SelectedItemIDs:   convertLegacyIDs(c.ItensSelecionados),
			})
		}
		// Single-campaign blobs kept the tree at the top level.
		if len(lp.Fornecedores) > 0 {
			q.Campaigns = append(q.Campaigns, Campaign{
				ID:                "default",
				Name:              "Campanha",
				Suppliers:         convertLegacySuppliers(lp.Fornecedores),
				SelectedOptionIDs: convertLegacyIDs(lp.OpcoesSelecionadas),
				SelectedItemIDs:   convertLegacyIDs(lp.ItensSelecionados),
			})
		}
		if category == CategoryFilm {
			p.Film = q
		} else {
			p.Audio = q
		}
	case CategoryClosedCaption:
		p.ClosedCaption = &ClosedCaptionPayload{Items: convertLegacyItems(lp.Itens)}
	case CategoryImage:
		img := &ImagePayload{}
		for _, li := range lp.Imagens {
			asset := ImageAsset{
				ID:              string(li.ID),
				Name:            li.Nome,
				URL:             li.URL,
				Provider:        li.Fornecedor,
				MediaType:       li.Tipo,
				ChosenLicenseID: string(li.LicencaEscolhida),
			}
			for _, l := range li.Licencas {
				asset.LicenseOptions = append(asset.LicenseOptions, LicenseOption{
					ID:    string(l.ID),
					Label: l.Nome,
					Price: money.Money(l.Preco),
				})
			}
			img.Assets = append(img.Assets, asset)
		}
		p.Image = img
	}
	return p, nil
}

func legacyCategory(tipo string) (BudgetCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "filme", "film":
		return CategoryFilm, true
	case "audio", "áudio":
		return CategoryAudio, true
	case "cc", "closed_caption", "closedcaption":
		return CategoryClosedCaption, true
	case "imagem", "image":
		return CategoryImage, true
	}
	return "", false
}

func convertLegacySuppliers(in []legacySupplier) []SupplierQuote {
	out := make([]SupplierQuote, 0, len(in))
	for _, s := range in {
		sq := SupplierQuote{ID: string(s.ID), Name: s.Nome, Contact: s.Contato}
		for _, o := range s.Opcoes {
			opt := Option{ID: string(o.ID), Name: o.Nome}
			for _, f := range o.Fases {
				opt.Phases = append(opt.Phases, Phase{ID: string(f.ID), Name: f.Nome, Items: convertLegacyItems(f.Itens)})
			}
			sq.Options = append(sq.Options, opt)
		}
		out = append(out, sq)
	}
	return out
}

func convertLegacyItems(in []legacyItem) []LineItem {
	out := make([]LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, LineItem{
			ID:       string(it.ID),
			Name:     it.Nome,
			Gross:    money.Money(it.Valor),
			Discount: money.Money(it.Desconto),
		})
	}
	return out
}

func convertLegacyIDs(in []legacyID) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = string(id)
	}
	return out
}
