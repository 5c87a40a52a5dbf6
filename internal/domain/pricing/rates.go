package pricing

import (
	"github.com/shopspring/decimal"

	"orcamentos_rtv/internal/domain/entities"
)

// Defaults are the configured fallbacks (PRICING_* env vars).
type Defaults struct {
	Honorario decimal.Decimal
	Tax       decimal.Decimal
	Fee       decimal.Decimal
}

// RateSource tells which value won for the honorário.
type RateSource string

const (
	RateSourceClient   RateSource = "client"
	RateSourceFallback RateSource = "fallback"
	RateSourceRequest  RateSource = "request"
)

// ResolveRates picks the client's configured honorário when present and the
// configured fallback otherwise. Tax and fee always come from Defaults.
func ResolveRates(client *entities.Client, d Defaults) (Rates, RateSource) {
	r := Rates{Honorario: d.Honorario, Tax: d.Tax, Fee: d.Fee}
	if client != nil && client.HonorarioPercent != nil {
		r.Honorario = *client.HonorarioPercent
		return r, RateSourceClient
	}
	return r, RateSourceFallback
}
