package request

import (
	"errors"
	"strings"
	"time"

	"orcamentos_rtv/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD or RFC3339")

const dateLayout = "2006-01-02"

type CreateRightsRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ProductID    string `json:"product_id"`
	Title        string `json:"title" binding:"required"`
	CRT          string `json:"crt"`
	StatusLabel  string `json:"status_label"`
	FirstAirDate string `json:"first_air_date"`
	ExpireDate   string `json:"expire_date"`
}

func (r CreateRightsRequest) ToInput() (usecase.CreateRightsInput, error) {
	firstAir, err := ParseDate(r.FirstAirDate)
	if err != nil {
		return usecase.CreateRightsInput{}, err
	}
	expire, err := ParseDate(r.ExpireDate)
	if err != nil {
		return usecase.CreateRightsInput{}, err
	}
	return usecase.CreateRightsInput{
		ClientID:     strings.TrimSpace(r.ClientID),
		ProductID:    strings.TrimSpace(r.ProductID),
		Title:        strings.TrimSpace(r.Title),
		CRT:          strings.TrimSpace(r.CRT),
		StatusLabel:  strings.TrimSpace(r.StatusLabel),
		FirstAirDate: firstAir,
		ExpireDate:   expire,
	}, nil
}

type RenewRightsRequest struct {
	NewExpireDate string `json:"new_expire_date" binding:"required"`
	Notes         string `json:"notes"`
}

func (r RenewRightsRequest) ToInput(id, renewedBy string) (usecase.RenewRightsInput, error) {
	expire, err := ParseDate(r.NewExpireDate)
	if err != nil {
		return usecase.RenewRightsInput{}, err
	}
	if expire == nil {
		return usecase.RenewRightsInput{}, ErrInvalidDate
	}
	return usecase.RenewRightsInput{
		ID:            id,
		NewExpireDate: *expire,
		RenewedBy:     renewedBy,
		Notes:         strings.TrimSpace(r.Notes),
	}, nil
}

type SetRightsStatusLabelRequest struct {
	StatusLabel string `json:"status_label"`
}

// ParseDate accepts a calendar date or an RFC3339 timestamp. Empty input is
// a nil date.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	t = t.UTC()
	return &t, nil
}
