package entities

import "time"

// RightsRecord tracks usage rights of a piece (film, track, image) aired for
// a client. StatusLabel is an independent, user-settable label; the derived
// expiration status comes from rights.Classify and is never stored.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type RightsRecord struct {
	ID           string     `json:"id"`
	ClientID     string     `json:"client_id"`
	ClientName   string     `json:"client_name,omitempty"`
	ProductID    string     `json:"product_id,omitempty"`
	ProductName  string     `json:"product_name,omitempty"`
	Title        string     `json:"title"`
	CRT          string     `json:"crt,omitempty"`
	FirstAirDate *time.Time `json:"first_air_date,omitempty"`
	ExpireDate   *time.Time `json:"expire_date,omitempty"`
	StatusLabel  string     `json:"status_label,omitempty"`
	Renewed      bool       `json:"renewed"`

	Notified30 bool `json:"notified_30"`
	Notified15 bool `json:"notified_15"`
	Notified0  bool `json:"notified_0"`

	Renewal *RenewalInfo `json:"renewal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RenewalInfo records the last renewal of a rights record.
type RenewalInfo struct {
	RenewedAt          time.Time  `json:"renewed_at"`
	RenewedBy          string     `json:"renewed_by"`
	PreviousExpireDate *time.Time `json:"previous_expire_date,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}
