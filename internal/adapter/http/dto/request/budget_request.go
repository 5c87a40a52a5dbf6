package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase"
)

type CreateBudgetRequest struct {
	Type      string `json:"type" binding:"required,budget_category"`
	ClientID  string `json:"client_id" binding:"required"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
}

func (r CreateBudgetRequest) ToInput(createdBy string) usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		Type:      entities.BudgetCategory(r.Type),
		ClientID:  strings.TrimSpace(r.ClientID),
		ProductID: strings.TrimSpace(r.ProductID),
		Title:     strings.TrimSpace(r.Title),
		CreatedBy: createdBy,
	}
}

type SetBudgetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent_to_account approved"`
}

// SaveVersionRequest carries the editor form. Payload may be a schema v1
// document or a legacy form blob (identified by its "tipo" key).
type SaveVersionRequest struct {
	Payload  json.RawMessage `json:"payload" binding:"required"`
	Autosave bool            `json:"autosave"`
}

func (r SaveVersionRequest) ToInput(budgetID, createdBy string) (usecase.SaveVersionInput, error) {
	p, err := DecodePayload(r.Payload)
	if err != nil {
		return usecase.SaveVersionInput{}, err
	}
	return usecase.SaveVersionInput{
		BudgetID:  budgetID,
		Payload:   p,
		Autosave:  r.Autosave,
		CreatedBy: createdBy,
	}, nil
}

// DecodePayload reads a payload sent by the editor. Legacy blobs go through
// entities.MigratePayload; everything else is decoded as the current schema
// with defaults filled in. The budget type may still be empty here.
func DecodePayload(raw json.RawMessage) (entities.Payload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return entities.Payload{}, fmt.Errorf("%w: payload is empty", entities.ErrInvalidPayload)
	}

	var probe struct {
		SchemaVersion *int            `json:"schema_version"`
		Tipo          json.RawMessage `json:"tipo"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return entities.Payload{}, fmt.Errorf("%w: %v", entities.ErrInvalidPayload, err)
	}
	if probe.SchemaVersion == nil && len(probe.Tipo) > 0 {
		return entities.MigratePayload(raw)
	}

	var p entities.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.Payload{}, fmt.Errorf("%w: %v", entities.ErrInvalidPayload, err)
	}
	return p.Normalize(), nil
}
