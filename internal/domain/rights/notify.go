package rights

import (
	"time"

	"orcamentos_rtv/internal/domain/entities"
)

// Threshold is a notification milestone in days before expiration.
type Threshold int

const (
	Threshold30 Threshold = 30
	Threshold15 Threshold = 15
	Threshold0  Threshold = 0
)

// DueThreshold returns the tightest milestone the record has reached and not
// yet been notified for, using the same day count as Classify. Expired
// records are never due. Reaching the 15-day mark also settles the 30-day one.
func DueThreshold(r entities.RightsRecord, now time.Time) (Threshold, bool) {
	if r.ExpireDate == nil {
		return 0, false
	}
	days := DaysUntil(r.ExpireDate, now)
	switch {
	case days < 0:
		return 0, false
	case days == 0:
		if !r.Notified0 {
			return Threshold0, true
		}
	case days <= 15:
		if !r.Notified15 {
			return Threshold15, true
		}
	case days <= 30:
		if !r.Notified30 {
			return Threshold30, true
		}
	}
	return 0, false
}

// MarkNotified sets the flag for t and every wider milestone.
func MarkNotified(r *entities.RightsRecord, t Threshold) {
	switch t {
	case Threshold0:
		r.Notified0 = true
		r.Notified15 = true
		r.Notified30 = true
	case Threshold15:
		r.Notified15 = true
		r.Notified30 = true
	case Threshold30:
		r.Notified30 = true
	}
}

// ResetNotifications clears every flag, used after a renewal.
func ResetNotifications(r *entities.RightsRecord) {
	r.Notified0 = false
	r.Notified15 = false
	r.Notified30 = false
}
