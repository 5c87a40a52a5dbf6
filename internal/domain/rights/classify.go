// Package rights derives the expiration status of usage-rights records.
package rights

import (
	"math"
	"time"

	"orcamentos_rtv/internal/domain/entities"
)

type Status string

const (
	StatusExpired      Status = "EXPIRED"
	StatusExpiresToday Status = "EXPIRES_TODAY"
	StatusExpiresLE15  Status = "EXPIRES_LE_15"
	StatusExpiresLE30  Status = "EXPIRES_LE_30"
	StatusInUse        Status = "IN_USE"
)

// Statuses lists every bucket in badge order.
var Statuses = []Status{StatusExpired, StatusExpiresToday, StatusExpiresLE15, StatusExpiresLE30, StatusInUse}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Label is the pt-BR badge text.
func (s Status) Label() string {
	switch s {
	case StatusExpired:
		return "Vencido"
	case StatusExpiresToday:
		return "Vence hoje"
	case StatusExpiresLE15:
		return "Vence em até 15 dias"
	case StatusExpiresLE30:
		return "Vence em até 30 dias"
	default:
		return "Em uso"
	}
}

// NoExpiryDays stands in for a missing expiration date.
const NoExpiryDays = 999

const day = 24 * time.Hour

// DaysUntil is ceil((expire - now) / 1 day), or NoExpiryDays when expire is nil.
func DaysUntil(expire *time.Time, now time.Time) int {
	if expire == nil {
		return NoExpiryDays
	}
	d := float64(expire.Sub(now)) / float64(day)
	return int(math.Ceil(d))
}

// ForDays maps a day count to its bucket. First matching rule wins.
func ForDays(daysUntil int) Status {
	switch {
	case daysUntil < 0:
		return StatusExpired
	case daysUntil == 0:
		return StatusExpiresToday
	case daysUntil <= 15:
		return StatusExpiresLE15
	case daysUntil <= 30:
		return StatusExpiresLE30
	default:
		return StatusInUse
	}
}

// Classify is re-evaluated on every read; nothing about it is persisted.
func Classify(expire *time.Time, now time.Time) Status {
	return ForDays(DaysUntil(expire, now))
}

// KPI holds per-bucket counts over a record set.
type KPI struct {
	Total        int `json:"total"`
	Expired      int `json:"vencido"`
	ExpiresToday int `json:"vence_hoje"`
	ExpiresLE15  int `json:"vence_15"`
	ExpiresLE30  int `json:"vence_30"`
	InUse        int `json:"em_uso"`
}

// Count returns the count for one bucket.
func (k KPI) Count(s Status) int {
	switch s {
	case StatusExpired:
		return k.Expired
	case StatusExpiresToday:
		return k.ExpiresToday
	case StatusExpiresLE15:
		return k.ExpiresLE15
	case StatusExpiresLE30:
		return k.ExpiresLE30
	case StatusInUse:
		return k.InUse
	}
	return 0
}

// CountByStatus classifies every record with Classify, so KPI cards always
// agree with the per-row badges.
func CountByStatus(records []entities.RightsRecord, now time.Time) KPI {
	var k KPI
	for _, r := range records {
		k.Total++
		switch Classify(r.ExpireDate, now) {
		case StatusExpired:
			k.Expired++
		case StatusExpiresToday:
			k.ExpiresToday++
		case StatusExpiresLE15:
			k.ExpiresLE15++
		case StatusExpiresLE30:
			k.ExpiresLE30++
		default:
			k.InUse++
		}
	}
	return k
}
