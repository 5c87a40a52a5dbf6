package usecase

import (
	"context"
	"errors"
	"strings"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/pricing"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg/logger"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPayload = entities.ErrInvalidPayload
	ErrInvalidPercent = errors.New("percentage must be between 0 and 100")
)

var hundredPercent = decimal.NewFromInt(100)

// PricedPayload is a payload priced with resolved rates.
type PricedPayload struct {
	Rates      pricing.Rates      `json:"rates"`
	RateSource pricing.RateSource `json:"rate_source"`
	Summary    pricing.Summary    `json:"summary"`
	Breakdown  pricing.Breakdown  `json:"breakdown"`
}

type PreviewInput struct {
	ClientID string
	Payload  entities.Payload

	// HonorarioPercent, when set, replaces the resolved honorário.
	HonorarioPercent *decimal.Decimal
}

// IPricingUseCase exposes the stateless pricing operations used by the budget
// editor while the user types.
type IPricingUseCase interface {
	Preview(ctx context.Context, in PreviewInput) (PricedPayload, error)
	SelectionTotal(suppliers []entities.SupplierQuote, itemIDs []string) pricing.Selection
	ResolveRates(ctx context.Context, clientID string) (pricing.Rates, pricing.RateSource, error)
}

type PricingUseCase struct {
	clients  interfaces.IClientRepository
	defaults pricing.Defaults
	log      *logger.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(clients interfaces.IClientRepository, defaults pricing.Defaults, log *logger.Logger) *PricingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PricingUseCase{clients: clients, defaults: defaults, log: log}
}

func (u *PricingUseCase) Preview(ctx context.Context, in PreviewInput) (PricedPayload, error) {
	if in.HonorarioPercent != nil && !validPercent(*in.HonorarioPercent) {
		return PricedPayload{}, ErrInvalidPercent
	}
	return u.price(ctx, in.ClientID, in.Payload, in.HonorarioPercent)
}

func (u *PricingUseCase) SelectionTotal(suppliers []entities.SupplierQuote, itemIDs []string) pricing.Selection {
	return pricing.SupplierSelectionTotal(suppliers, itemIDs)
}

// ResolveRates returns the configured fallbacks when clientID is empty.
func (u *PricingUseCase) ResolveRates(ctx context.Context, clientID string) (pricing.Rates, pricing.RateSource, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		r, src := pricing.ResolveRates(nil, u.defaults)
		return r, src, nil
	}

	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return pricing.Rates{}, "", err
	}
	if c.ID == "" {
		return pricing.Rates{}, "", ErrClientNotFound
	}
	r, src := pricing.ResolveRates(&c, u.defaults)
	return r, src, nil
}

func (u *PricingUseCase) price(ctx context.Context, clientID string, p entities.Payload, honorario *decimal.Decimal) (PricedPayload, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return PricedPayload{}, err
	}

	rates, src, err := u.ResolveRates(ctx, clientID)
	if err != nil {
		return PricedPayload{}, err
	}
	if honorario != nil {
		rates.Honorario = *honorario
		src = pricing.RateSourceRequest
	}

	summary, breakdown := pricing.Price(p, rates)
	if len(breakdown.Dangling) > 0 {
		u.log.Warn(ctx, "selection references ids missing from the quote tree", map[string]any{
			"client_id":    clientID,
			"dangling_ids": breakdown.Dangling,
		})
	}
	return PricedPayload{Rates: rates, RateSource: src, Summary: summary, Breakdown: breakdown}, nil
}

func validPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundredPercent)
}
