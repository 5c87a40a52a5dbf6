package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/domain/rights"
	"orcamentos_rtv/internal/usecase/interfaces"
	mock_interfaces "orcamentos_rtv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func inDays(n int) *time.Time {
	t := fixedNow.Add(time.Duration(n) * 24 * time.Hour)
	return &t
}

type rightsMocks struct {
	repo     *mock_interfaces.MockIRightsRepository
	clients  *mock_interfaces.MockIClientRepository
	products *mock_interfaces.MockIProductRepository
	notifier *mock_interfaces.MockIRightsNotifier
}

func newRightsUseCase(ctrl *gomock.Controller, withNotifier bool) (*RightsUseCase, rightsMocks) {
	m := rightsMocks{
		repo:     mock_interfaces.NewMockIRightsRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		products: mock_interfaces.NewMockIProductRepository(ctrl),
	}
	var notifier interfaces.IRightsNotifier
	if withNotifier {
		m.notifier = mock_interfaces.NewMockIRightsNotifier(ctrl)
		notifier = m.notifier
	}
	uc := NewRightsUseCase(m.repo, m.clients, m.products, notifier, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestRightsUseCase_CreateRecord(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRightsUseCase(ctrl, false)

		_, err := uc.CreateRecord(context.Background(), CreateRightsInput{ClientID: "c-1"})
		if !errors.Is(err, ErrInvalidRightsTitle) {
			t.Fatalf("expected ErrInvalidRightsTitle, got %v", err)
		}
	})

	t.Run("expire before first air", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRightsUseCase(ctrl, false)

		_, err := uc.CreateRecord(context.Background(), CreateRightsInput{
			ClientID: "c-1", Title: "Filme 30s", FirstAirDate: inDays(0), ExpireDate: inDays(-1),
		})
		if !errors.Is(err, ErrInvalidExpireDate) {
			t.Fatalf("expected ErrInvalidExpireDate, got %v", err)
		}
	})

	t.Run("denormalizes names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRightsUseCase(ctrl, false)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "ACME"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", ClientID: "c-1", Name: "Refri"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RightsRecord{})).DoAndReturn(
			func(_ context.Context, r entities.RightsRecord) (entities.RightsRecord, error) {
				if r.ClientName != "ACME" || r.ProductName != "Refri" || r.ID == "" {
					t.Fatalf("unexpected record: %+v", r)
				}
				return r, nil
			},
		)

		v, err := uc.CreateRecord(context.Background(), CreateRightsInput{
			ClientID: "c-1", ProductID: "p-1", Title: "Filme 30s", ExpireDate: inDays(10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != rights.StatusExpiresLE15 || v.DaysUntil != 10 {
			t.Fatalf("unexpected derived status: %+v", v)
		}
	})
}

func TestRightsUseCase_ListRecords(t *testing.T) {
	records := []entities.RightsRecord{
		{ID: "r1", ExpireDate: inDays(-2)},
		{ID: "r2", ExpireDate: inDays(0)},
		{ID: "r3", ExpireDate: inDays(12)},
		{ID: "r4", ExpireDate: inDays(25)},
		{ID: "r5"},
		{ID: "r6", ExpireDate: inDays(-40)},
	}

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRightsUseCase(ctrl, false)

		_, err := uc.ListRecords(context.Background(), RightsListFilter{Status: "SOON"})
		if !errors.Is(err, ErrInvalidRightsStatus) {
			t.Fatalf("expected ErrInvalidRightsStatus, got %v", err)
		}
	})

	t.Run("filter by status keeps KPI over the whole set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRightsUseCase(ctrl, false)
		m.repo.EXPECT().List(gomock.Any(), interfaces.RightsFilter{ClientID: "c-1"}).Return(records, nil)

		res, err := uc.ListRecords(context.Background(), RightsListFilter{ClientID: " c-1 ", Status: rights.StatusExpired})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 || res.Items[0].ID != "r6" || res.Items[1].ID != "r1" {
			t.Fatalf("unexpected items: %+v", res.Items)
		}
		if res.KPI.Total != 6 || res.KPI.Expired != 2 || res.KPI.ExpiresToday != 1 || res.KPI.InUse != 1 {
			t.Fatalf("unexpected KPI: %+v", res.KPI)
		}
		if res.KPI.Count(rights.StatusExpired) != len(res.Items) {
			t.Fatalf("KPI and badges disagree")
		}
	})
}

func TestRightsUseCase_Renew(t *testing.T) {
	t.Run("zero date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRightsUseCase(ctrl, false)

		_, err := uc.Renew(context.Background(), RenewRightsInput{ID: "r1"})
		if !errors.Is(err, ErrInvalidExpireDate) {
			t.Fatalf("expected ErrInvalidExpireDate, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRightsUseCase(ctrl, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.RightsRecord{}, nil)

		_, err := uc.Renew(context.Background(), RenewRightsInput{ID: "r1", NewExpireDate: *inDays(365)})
		if !errors.Is(err, ErrRightsNotFound) {
			t.Fatalf("expected ErrRightsNotFound, got %v", err)
		}
	})

	t.Run("resets notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRightsUseCase(ctrl, false)
		old := inDays(-1)
		m.repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.RightsRecord{
			ID: "r1", ExpireDate: old, Notified30: true, Notified15: true, Notified0: true,
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.RightsRecord{})).DoAndReturn(
			func(_ context.Context, r entities.RightsRecord) (entities.RightsRecord, error) {
				if r.Notified30 || r.Notified15 || r.Notified0 {
					t.Fatalf("expected notification flags reset: %+v", r)
				}
				if !r.Renewed || r.Renewal == nil || r.Renewal.RenewedBy != "ana@agencia.com.br" {
					t.Fatalf("expected renewal metadata: %+v", r)
				}
				if r.Renewal.PreviousExpireDate == nil || !r.Renewal.PreviousExpireDate.Equal(*old) {
					t.Fatalf("expected previous expire date to be kept")
				}
				return r, nil
			},
		)

		v, err := uc.Renew(context.Background(), RenewRightsInput{ID: "r1", NewExpireDate: *inDays(365), RenewedBy: "ana@agencia.com.br"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != rights.StatusInUse {
			t.Fatalf("expected IN_USE after renewal, got %s", v.Status)
		}
	})
}

func TestRightsUseCase_SweepNotifications(t *testing.T) {
	t.Run("notifier disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRightsUseCase(ctrl, false)

		_, err := uc.SweepNotifications(context.Background())
		if !errors.Is(err, ErrNotifierNotAvailable) {
			t.Fatalf("expected ErrNotifierNotAvailable, got %v", err)
		}
	})

	t.Run("notifies due records once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRightsUseCase(ctrl, true)

		m.repo.EXPECT().List(gomock.Any(), interfaces.RightsFilter{}).Return([]entities.RightsRecord{
			{ID: "due30", ExpireDate: inDays(28)},
			{ID: "done30", ExpireDate: inDays(28), Notified30: true},
			{ID: "due0", ExpireDate: inDays(0), Notified30: true, Notified15: true},
			{ID: "fails", ExpireDate: inDays(14)},
			{ID: "far", ExpireDate: inDays(90)},
		}, nil)

		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), rights.Threshold30, 28).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), rights.Threshold0, 0).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), rights.Threshold15, 14).Return(errors.New("smtp down"))

		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.RightsRecord{})).DoAndReturn(
			func(_ context.Context, r entities.RightsRecord) (entities.RightsRecord, error) {
				switch r.ID {
				case "due30":
					if !r.Notified30 || r.Notified15 {
						t.Fatalf("unexpected flags for due30: %+v", r)
					}
				case "due0":
					if !r.Notified0 {
						t.Fatalf("expected Notified0 for due0")
					}
				default:
					t.Fatalf("unexpected update for %s", r.ID)
				}
				return r, nil
			},
		).Times(2)

		res, err := uc.SweepNotifications(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Checked != 5 || res.Notified != 2 || res.Failed != 1 {
			t.Fatalf("unexpected sweep result: %+v", res)
		}
	})
}

func TestRightsUseCase_SweepNotificationsLocked(t *testing.T) {
	t.Run("sweep already running elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRightsUseCase(ctrl, true)
		locker := mock_interfaces.NewMockILocker(ctrl)
		uc.WithLocker(locker)

		locker.EXPECT().WithLock(gomock.Any(), SweepLockKey, gomock.Any()).Return(interfaces.ErrLockHeld)

		_, err := uc.SweepNotifications(context.Background())
		if !errors.Is(err, ErrSweepInProgress) {
			t.Fatalf("expected ErrSweepInProgress, got %v", err)
		}
	})

	t.Run("runs inside the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRightsUseCase(ctrl, true)
		locker := mock_interfaces.NewMockILocker(ctrl)
		uc.WithLocker(locker)

		held := false
		locker.EXPECT().WithLock(gomock.Any(), SweepLockKey, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ string, fn func(context.Context) error) error {
				held = true
				defer func() { held = false }()
				return fn(ctx)
			})
		m.repo.EXPECT().List(gomock.Any(), interfaces.RightsFilter{}).DoAndReturn(
			func(context.Context, interfaces.RightsFilter) ([]entities.RightsRecord, error) {
				if !held {
					t.Fatalf("records listed outside the sweep lock")
				}
				return []entities.RightsRecord{{ID: "due30", ExpireDate: inDays(28)}}, nil
			})
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), rights.Threshold30, 28).Return(nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RightsRecord) (entities.RightsRecord, error) { return r, nil })

		res, err := uc.SweepNotifications(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Checked != 1 || res.Notified != 1 {
			t.Fatalf("unexpected sweep result: %+v", res)
		}
	})
}
