package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/rights"
	"orcamentos_rtv/internal/usecase/interfaces"
	"orcamentos_rtv/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrRightsNotFound       = errors.New("rights record not found")
	ErrInvalidRightsID      = errors.New("invalid rights record id")
	ErrInvalidRightsTitle   = errors.New("invalid rights title")
	ErrInvalidRightsStatus  = errors.New("invalid rights status filter")
	ErrInvalidExpireDate    = errors.New("invalid expire date")
	ErrNotifierNotAvailable = errors.New("rights notifier not configured")
	ErrSweepInProgress      = errors.New("a notification sweep is already running")
)

type CreateRightsInput struct {
	ClientID     string
	ProductID    string
	Title        string
	CRT          string
	StatusLabel  string
	FirstAirDate *time.Time
	ExpireDate   *time.Time
}

type RenewRightsInput struct {
	ID            string
	NewExpireDate time.Time
	RenewedBy     string
	Notes         string
}

// RightsListFilter narrows a listing. Status is applied after
// classification, KPIs ignore it.
type RightsListFilter struct {
	ClientID  string
	ProductID string
	Status    rights.Status
}

// RightsView is a record with its status derived at read time.
type RightsView struct {
	entities.RightsRecord
	Status    rights.Status `json:"status"`
	Badge     string        `json:"badge"`
	DaysUntil int           `json:"days_until"`
}

type RightsList struct {
	Items []RightsView `json:"items"`
	KPI   rights.KPI   `json:"kpi"`
}

type SweepResult struct {
	Checked  int `json:"checked"`
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}

// IRightsUseCase exposes the media-rights tracker.
type IRightsUseCase interface {
	CreateRecord(ctx context.Context, in CreateRightsInput) (RightsView, error)
	GetRecord(ctx context.Context, id string) (RightsView, error)
	ListRecords(ctx context.Context, f RightsListFilter) (RightsList, error)
	KPIs(ctx context.Context, f RightsListFilter) (rights.KPI, error)
	Renew(ctx context.Context, in RenewRightsInput) (RightsView, error)
	SetStatusLabel(ctx context.Context, id, label string) (RightsView, error)
	SweepNotifications(ctx context.Context) (SweepResult, error)
}

// SweepLockKey guards the notification sweep so the API route and the
// scheduled notifier never run it concurrently.
const SweepLockKey = "orcamentos:rights-sweep"

type RightsUseCase struct {
	repo     interfaces.IRightsRepository
	clients  interfaces.IClientRepository
	products interfaces.IProductRepository
	notifier interfaces.IRightsNotifier
	locker   interfaces.ILocker
	log      *logger.Logger
	now      func() time.Time
}

var _ IRightsUseCase = (*RightsUseCase)(nil)

// NewRightsUseCase accepts a nil notifier when notifications are disabled.
func NewRightsUseCase(
	repo interfaces.IRightsRepository,
	clients interfaces.IClientRepository,
	products interfaces.IProductRepository,
	notifier interfaces.IRightsNotifier,
	log *logger.Logger,
) *RightsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RightsUseCase{repo: repo, clients: clients, products: products, notifier: notifier, log: log, now: utcNow}
}

// WithLocker makes SweepNotifications run under SweepLockKey.
func (u *RightsUseCase) WithLocker(locker interfaces.ILocker) *RightsUseCase {
	u.locker = locker
	return u
}

func (u *RightsUseCase) CreateRecord(ctx context.Context, in CreateRightsInput) (RightsView, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return RightsView{}, ErrInvalidRightsTitle
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return RightsView{}, ErrInvalidClientID
	}
	if in.FirstAirDate != nil && in.ExpireDate != nil && in.ExpireDate.Before(*in.FirstAirDate) {
		return RightsView{}, ErrInvalidExpireDate
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return RightsView{}, err
	}
	if client.ID == "" {
		return RightsView{}, ErrClientNotFound
	}

	now := u.now()
	r := entities.RightsRecord{
		ID:           uuid.NewString(),
		ClientID:     client.ID,
		ClientName:   client.Name,
		Title:        title,
		CRT:          strings.TrimSpace(in.CRT),
		FirstAirDate: in.FirstAirDate,
		ExpireDate:   in.ExpireDate,
		StatusLabel:  strings.TrimSpace(in.StatusLabel),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if productID := strings.TrimSpace(in.ProductID); productID != "" {
		product, err := u.products.GetByID(ctx, productID)
		if err != nil {
			return RightsView{}, err
		}
		if product.ID == "" {
			return RightsView{}, ErrProductNotFound
		}
		if product.ClientID != client.ID {
			return RightsView{}, ErrProductClientMismatch
		}
		r.ProductID = product.ID
		r.ProductName = product.Name
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return RightsView{}, err
	}
	return u.view(created, now), nil
}

func (u *RightsUseCase) GetRecord(ctx context.Context, id string) (RightsView, error) {
	r, err := u.get(ctx, id)
	if err != nil {
		return RightsView{}, err
	}
	return u.view(r, u.now()), nil
}

func (u *RightsUseCase) get(ctx context.Context, id string) (entities.RightsRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RightsRecord{}, ErrInvalidRightsID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RightsRecord{}, err
	}
	if r.ID == "" {
		return entities.RightsRecord{}, ErrRightsNotFound
	}
	return r, nil
}

// ListRecords classifies every record once with a single "now", so the
// badges and the KPI cards of one response always agree.
func (u *RightsUseCase) ListRecords(ctx context.Context, f RightsListFilter) (RightsList, error) {
	if f.Status != "" && !f.Status.IsValid() {
		return RightsList{}, ErrInvalidRightsStatus
	}

	records, err := u.repo.List(ctx, interfaces.RightsFilter{
		ClientID:  strings.TrimSpace(f.ClientID),
		ProductID: strings.TrimSpace(f.ProductID),
	})
	if err != nil {
		return RightsList{}, err
	}

	now := u.now()
	out := RightsList{Items: make([]RightsView, 0, len(records)), KPI: rights.CountByStatus(records, now)}
	for _, r := range records {
		v := u.view(r, now)
		if f.Status != "" && v.Status != f.Status {
			continue
		}
		out.Items = append(out.Items, v)
	}
	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].DaysUntil < out.Items[j].DaysUntil
	})
	return out, nil
}

func (u *RightsUseCase) KPIs(ctx context.Context, f RightsListFilter) (rights.KPI, error) {
	list, err := u.ListRecords(ctx, RightsListFilter{ClientID: f.ClientID, ProductID: f.ProductID})
	if err != nil {
		return rights.KPI{}, err
	}
	return list.KPI, nil
}

// Renew moves the expiration date, marks the record renewed and re-arms the
// 30/15/0-day notifications.
func (u *RightsUseCase) Renew(ctx context.Context, in RenewRightsInput) (RightsView, error) {
	if in.NewExpireDate.IsZero() {
		return RightsView{}, ErrInvalidExpireDate
	}
	r, err := u.get(ctx, in.ID)
	if err != nil {
		return RightsView{}, err
	}
	if r.FirstAirDate != nil && in.NewExpireDate.Before(*r.FirstAirDate) {
		return RightsView{}, ErrInvalidExpireDate
	}

	now := u.now()
	newExpire := in.NewExpireDate.UTC()
	r.Renewal = &entities.RenewalInfo{
		RenewedAt:          now,
		RenewedBy:          strings.TrimSpace(in.RenewedBy),
		PreviousExpireDate: r.ExpireDate,
		Notes:              strings.TrimSpace(in.Notes),
	}
	r.ExpireDate = &newExpire
	r.Renewed = true
	rights.ResetNotifications(&r)
	r.UpdatedAt = now

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return RightsView{}, err
	}
	if updated.ID == "" {
		return RightsView{}, ErrRightsNotFound
	}
	return u.view(updated, now), nil
}

func (u *RightsUseCase) SetStatusLabel(ctx context.Context, id, label string) (RightsView, error) {
	r, err := u.get(ctx, id)
	if err != nil {
		return RightsView{}, err
	}
	r.StatusLabel = strings.TrimSpace(label)
	r.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return RightsView{}, err
	}
	if updated.ID == "" {
		return RightsView{}, ErrRightsNotFound
	}
	return u.view(updated, r.UpdatedAt), nil
}

// SweepNotifications sends every due 30/15/0-day warning once. A failed
// delivery leaves the flag unset so the next sweep retries it. With a locker
// configured, a sweep already running elsewhere yields ErrSweepInProgress.
func (u *RightsUseCase) SweepNotifications(ctx context.Context) (SweepResult, error) {
	if u.notifier == nil {
		return SweepResult{}, ErrNotifierNotAvailable
	}
	if u.locker == nil {
		return u.sweep(ctx)
	}

	var res SweepResult
	err := u.locker.WithLock(ctx, SweepLockKey, func(ctx context.Context) error {
		var err error
		res, err = u.sweep(ctx)
		return err
	})
	if errors.Is(err, interfaces.ErrLockHeld) {
		return SweepResult{}, ErrSweepInProgress
	}
	return res, err
}

func (u *RightsUseCase) sweep(ctx context.Context) (SweepResult, error) {
	records, err := u.repo.List(ctx, interfaces.RightsFilter{})
	if err != nil {
		return SweepResult{}, err
	}

	now := u.now()
	var res SweepResult
	for _, r := range records {
		res.Checked++
		threshold, due := rights.DueThreshold(r, now)
		if !due {
			continue
		}

		fields := map[string]any{"rights_id": r.ID, "threshold": int(threshold)}
		if err := u.notifier.Notify(ctx, r, threshold, rights.DaysUntil(r.ExpireDate, now)); err != nil {
			res.Failed++
			u.log.Error(ctx, "rights notification failed", err, fields)
			continue
		}

		rights.MarkNotified(&r, threshold)
		r.UpdatedAt = now
		if _, err := u.repo.Update(ctx, r); err != nil {
			res.Failed++
			u.log.Error(ctx, "failed to persist notification flags", err, fields)
			continue
		}
		res.Notified++
	}

	u.log.Info(ctx, "rights notification sweep finished", map[string]any{
		"checked":  res.Checked,
		"notified": res.Notified,
		"failed":   res.Failed,
	})
	return res, nil
}

func (u *RightsUseCase) view(r entities.RightsRecord, now time.Time) RightsView {
	status := rights.Classify(r.ExpireDate, now)
	return RightsView{
		RightsRecord: r,
		Status:       status,
		Badge:        status.Label(),
		DaysUntil:    rights.DaysUntil(r.ExpireDate, now),
	}
}
