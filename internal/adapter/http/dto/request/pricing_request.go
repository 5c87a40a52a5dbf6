package request

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase"
)

// PreviewRequest prices a payload without saving it. HonorarioPercent
// overrides the client's rate for this preview only.
type PreviewRequest struct {
	ClientID         string           `json:"client_id"`
	Payload          json.RawMessage  `json:"payload" binding:"required"`
	HonorarioPercent *decimal.Decimal `json:"honorario_percent"`
}

func (r PreviewRequest) ToInput() (usecase.PreviewInput, error) {
	p, err := DecodePayload(r.Payload)
	if err != nil {
		return usecase.PreviewInput{}, err
	}
	return usecase.PreviewInput{
		ClientID:         strings.TrimSpace(r.ClientID),
		Payload:          p,
		HonorarioPercent: r.HonorarioPercent,
	}, nil
}

type SelectionTotalRequest struct {
	Suppliers       []entities.SupplierQuote `json:"suppliers"`
	SelectedItemIDs []string                 `json:"selected_item_ids"`
}
