package response

import (
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/money"
	"orcamentos_rtv/internal/domain/pricing"
	"orcamentos_rtv/internal/usecase"
)

type BudgetResponse struct {
	ID            string    `json:"id"`
	DisplayID     string    `json:"display_id"`
	Type          string    `json:"type"`
	ClientID      string    `json:"client_id"`
	ProductID     string    `json:"product_id,omitempty"`
	Title         string    `json:"title,omitempty"`
	Status        string    `json:"status"`
	LatestVersion int       `json:"latest_version"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:            b.ID,
		DisplayID:     b.DisplayID,
		Type:          string(b.Type),
		ClientID:      b.ClientID,
		ProductID:     b.ProductID,
		Title:         b.Title,
		Status:        string(b.Status),
		LatestVersion: b.LatestVersion,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// VersionSummaryResponse lists a version without its payload.
type VersionSummaryResponse struct {
	ID            string      `json:"id"`
	VersionNumber int         `json:"version_number"`
	TotalGeneral  money.Money `json:"total_general"`
	Autosave      bool        `json:"autosave"`
	CreatedBy     string      `json:"created_by,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func FromVersionSummary(v entities.Version) VersionSummaryResponse {
	return VersionSummaryResponse{
		ID:            v.ID,
		VersionNumber: v.VersionNumber,
		TotalGeneral:  v.TotalGeneral,
		Autosave:      v.Autosave,
		CreatedBy:     v.CreatedBy,
		CreatedAt:     v.CreatedAt,
	}
}

type VersionResponse struct {
	VersionSummaryResponse
	BudgetID string           `json:"budget_id"`
	Payload  entities.Payload `json:"payload"`
}

func FromVersion(v entities.Version) VersionResponse {
	return VersionResponse{
		VersionSummaryResponse: FromVersionSummary(v),
		BudgetID:               v.BudgetID,
		Payload:                v.Payload,
	}
}

// FormattedTotals holds the display strings of a Totals, for the locale of
// the service.
type FormattedTotals struct {
	Subtotal  string `json:"subtotal"`
	Honorario string `json:"honorario"`
	Taxes     string `json:"taxes"`
	Fees      string `json:"fees"`
	Total     string `json:"total"`
}

func FormatTotals(t pricing.Totals, locale string) FormattedTotals {
	return FormattedTotals{
		Subtotal:  money.Format(t.Subtotal, locale),
		Honorario: money.Format(t.Honorario, locale),
		Taxes:     money.Format(t.Taxes, locale),
		Fees:      money.Format(t.Fees, locale),
		Total:     money.Format(t.Total, locale),
	}
}

type RatesResponse struct {
	Rates      pricing.Rates      `json:"rates"`
	RateSource pricing.RateSource `json:"rate_source"`
}

type PricedResponse struct {
	Rates      pricing.Rates      `json:"rates"`
	RateSource pricing.RateSource `json:"rate_source"`
	Summary    pricing.Summary    `json:"summary"`
	Breakdown  pricing.Breakdown  `json:"breakdown"`
	Formatted  FormattedTotals    `json:"formatted"`
}

func FromPriced(p usecase.PricedPayload, locale string) PricedResponse {
	return PricedResponse{
		Rates:      p.Rates,
		RateSource: p.RateSource,
		Summary:    p.Summary,
		Breakdown:  p.Breakdown,
		Formatted:  FormatTotals(p.Summary.Combined, locale),
	}
}

// TotalsResponse is a version priced with the current rates. TotalGeneral is
// the figure frozen when the version was saved.
type TotalsResponse struct {
	BudgetID      string      `json:"budget_id"`
	DisplayID     string      `json:"display_id"`
	VersionNumber int         `json:"version_number"`
	TotalGeneral  money.Money `json:"total_general"`
	PricedResponse
}

func FromTotals(t usecase.BudgetTotals, locale string) TotalsResponse {
	return TotalsResponse{
		BudgetID:       t.Budget.ID,
		DisplayID:      t.Budget.DisplayID,
		VersionNumber:  t.Version.VersionNumber,
		TotalGeneral:   t.Version.TotalGeneral,
		PricedResponse: FromPriced(t.PricedPayload, locale),
	}
}

type SelectionResponse struct {
	Total          money.Money `json:"total"`
	TotalFormatted string      `json:"total_formatted"`
	MatchedIDs     []string    `json:"matched_ids"`
	DanglingIDs    []string    `json:"dangling_ids"`
}

func FromSelection(s pricing.Selection, locale string) SelectionResponse {
	res := SelectionResponse{
		Total:          s.Total,
		TotalFormatted: money.Format(s.Total, locale),
		MatchedIDs:     s.Matched,
		DanglingIDs:    s.Dangling,
	}
	if res.MatchedIDs == nil {
		res.MatchedIDs = []string{}
	}
	if res.DanglingIDs == nil {
		res.DanglingIDs = []string{}
	}
	return res
}
