package entities

import (
	"errors"
	"fmt"

	"orcamentos_rtv/internal/domain/money"
)

// CurrentPayloadSchema is the schema_version written by this service.
const CurrentPayloadSchema = 1

var ErrInvalidPayload = errors.New("invalid version payload")

// PresentationMode decides whether campaign totals are composed together or
// one by one.
type PresentationMode string

const (
	ModeSummed   PresentationMode = "summed"
	ModeSeparate PresentationMode = "separate"
)

func (m PresentationMode) IsValid() bool {
	return m == ModeSummed || m == ModeSeparate
}

// Payload is the typed snapshot stored in a Version. Exactly one category
// member is set and it matches Type.
type Payload struct {
	SchemaVersion int              `json:"schema_version"`
	Type          BudgetCategory   `json:"type"`
	Mode          PresentationMode `json:"mode"`
	Notes         string           `json:"notes,omitempty"`

	Film          *QuotePayload         `json:"film,omitempty"`
	Audio         *QuotePayload         `json:"audio,omitempty"`
	ClosedCaption *ClosedCaptionPayload `json:"closed_caption,omitempty"`
	Image         *ImagePayload         `json:"image,omitempty"`
}

// QuotePayload holds film and audio budgets: campaigns of supplier quotes.
type QuotePayload struct {
	Campaigns []Campaign `json:"campaigns"`
}

type ClosedCaptionPayload struct {
	Items []LineItem `json:"items"`
}

type ImagePayload struct {
	Assets []ImageAsset `json:"assets"`
}

// ImageAsset is a stock image/footage with the license options offered for it.
type ImageAsset struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	URL             string          `json:"url,omitempty"`
	Provider        string          `json:"provider,omitempty"`
	MediaType       string          `json:"media_type,omitempty"`
	LicenseOptions  []LicenseOption `json:"license_options"`
	ChosenLicenseID string          `json:"chosen_license_id,omitempty"`
}

type LicenseOption struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Price money.Money `json:"price"`
}

// ChosenPrice returns the price of the chosen license, false when nothing
// (or an unknown option) is chosen.
func (a ImageAsset) ChosenPrice() (money.Money, bool) {
	if a.ChosenLicenseID == "" {
		return money.Zero, false
	}
	for _, opt := range a.LicenseOptions {
		if opt.ID == a.ChosenLicenseID {
			return opt.Price, true
		}
	}
	return money.Zero, false
}

// Normalize fills defaults that older clients omit.
func (p Payload) Normalize() Payload {
	if p.SchemaVersion == 0 {
		p.SchemaVersion = CurrentPayloadSchema
	}
	if p.Mode == "" {
		p.Mode = ModeSummed
	}
	return p
}

func (p Payload) Validate() error {
	if p.SchemaVersion != CurrentPayloadSchema {
		return fmt.Errorf("%w: unsupported schema_version %d", ErrInvalidPayload, p.SchemaVersion)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPayload, p.Type)
	}
	if !p.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidPayload, p.Mode)
	}

	set := map[BudgetCategory]bool{
		CategoryFilm:          p.Film != nil,
		CategoryAudio:         p.Audio != nil,
		CategoryClosedCaption: p.ClosedCaption != nil,
		CategoryImage:         p.Image != nil,
	}
	for c, ok := range set {
		if ok && c != p.Type {
			return fmt.Errorf("%w: %s section present on a %s payload", ErrInvalidPayload, c, p.Type)
		}
	}
	if !set[p.Type] {
		return fmt.Errorf("%w: missing %s section", ErrInvalidPayload, p.Type)
	}

	switch p.Type {
	case CategoryFilm:
		return validateQuote(p.Film)
	case CategoryAudio:
		return validateQuote(p.Audio)
	case CategoryClosedCaption:
		return validateItems(p.ClosedCaption.Items)
	case CategoryImage:
		for _, a := range p.Image.Assets {
			for _, opt := range a.LicenseOptions {
				if opt.Price < 0 {
					return fmt.Errorf("%w: negative license price on asset %q", ErrInvalidPayload, a.ID)
				}
			}
		}
	}
	return nil
}

func validateQuote(q *QuotePayload) error {
	for _, c := range q.Campaigns {
		for _, s := range c.Suppliers {
			for _, o := range s.Options {
				for _, ph := range o.Phases {
					if err := validateItems(ph.Items); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func validateItems(items []LineItem) error {
	for _, it := range items {
		if it.Gross < 0 {
			return fmt.Errorf("%w: negative gross value on item %q", ErrInvalidPayload, it.ID)
		}
		if it.Discount < 0 {
			return fmt.Errorf("%w: negative discount on item %q", ErrInvalidPayload, it.ID)
		}
	}
	return nil
}
