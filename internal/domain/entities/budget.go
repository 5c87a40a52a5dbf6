package entities

import "time"

// BudgetStatus is set by an explicit user action only; nothing in the
// service moves a budget between statuses on its own.
type BudgetStatus string

const (
	BudgetStatusDraft         BudgetStatus = "draft"
	BudgetStatusSentToAccount BudgetStatus = "sent_to_account"
	BudgetStatusApproved      BudgetStatus = "approved"
)

func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusSentToAccount, BudgetStatusApproved:
		return true
	}
	return false
}

// BudgetCategory is the kind of production a budget prices.
type BudgetCategory string

const (
	CategoryFilm          BudgetCategory = "film"
	CategoryAudio         BudgetCategory = "audio"
	CategoryClosedCaption BudgetCategory = "closed_caption"
	CategoryImage         BudgetCategory = "image"
)

// Categories lists every category in display order.
var Categories = []BudgetCategory{CategoryFilm, CategoryAudio, CategoryClosedCaption, CategoryImage}

func (c BudgetCategory) IsValid() bool {
	switch c {
	case CategoryFilm, CategoryAudio, CategoryClosedCaption, CategoryImage:
		return true
	}
	return false
}

// Budget (orçamento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// The priced content lives in Version records; a budget only tracks
// identity, ownership and status.
type Budget struct {
	ID            string         `json:"id"`
	DisplayID     string         `json:"display_id"`
	Type          BudgetCategory `json:"type"`
	ClientID      string         `json:"client_id"`
	ProductID     string         `json:"product_id"`
	Title         string         `json:"title"`
	Status        BudgetStatus   `json:"status"`
	LatestVersion int            `json:"latest_version"`
	CreatedBy     string         `json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
