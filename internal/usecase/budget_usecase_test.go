package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcamentos_rtv/internal/domain/entities"
	"orcamentos_rtv/internal/usecase/interfaces"
	mock_interfaces "orcamentos_rtv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type budgetMocks struct {
	budgets  *mock_interfaces.MockIBudgetRepository
	versions *mock_interfaces.MockIVersionRepository
	clients  *mock_interfaces.MockIClientRepository
	products *mock_interfaces.MockIProductRepository
}

func newBudgetUseCase(ctrl *gomock.Controller, exporters ...interfaces.IBudgetExporter) (*BudgetUseCase, budgetMocks) {
	m := budgetMocks{
		budgets:  mock_interfaces.NewMockIBudgetRepository(ctrl),
		versions: mock_interfaces.NewMockIVersionRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		products: mock_interfaces.NewMockIProductRepository(ctrl),
	}
	pricer := NewPricingUseCase(m.clients, testDefaults(), nil)
	uc := NewBudgetUseCase(m.budgets, m.versions, m.clients, m.products, pricer, exporters, BudgetOptions{Locale: "pt-BR"}, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestBudgetUseCase_CreateBudget(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBudgetUseCase(ctrl)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{Type: "radio", ClientID: "c-1"})
		if !errors.Is(err, ErrInvalidBudgetType) {
			t.Fatalf("expected ErrInvalidBudgetType, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{Type: entities.CategoryFilm, ClientID: "c-1"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("product of another client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", ClientID: "c-2"}, nil)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{Type: entities.CategoryFilm, ClientID: "c-1", ProductID: "p-1"})
		if !errors.Is(err, ErrProductClientMismatch) {
			t.Fatalf("expected ErrProductClientMismatch, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", ClientID: "c-1"}, nil)
		m.budgets.EXPECT().NextSequence(gomock.Any(), 2025).Return(42, nil)
		m.budgets.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" || b.DisplayID != "ORC-2025-0042" {
					t.Fatalf("unexpected ids: %+v", b)
				}
				if b.Status != entities.BudgetStatusDraft || b.LatestVersion != 0 {
					t.Fatalf("expected a fresh draft, got %+v", b)
				}
				return b, nil
			},
		)

		_, err := uc.CreateBudget(context.Background(), CreateBudgetInput{
			Type:      entities.CategoryFilm,
			ClientID:  " c-1 ",
			ProductID: "p-1",
			Title:     " Verão 2025 ",
			CreatedBy: "ana@agencia.com.br",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFormatDisplayID(t *testing.T) {
	if got := FormatDisplayID("ORC", 2024, 7); got != "ORC-2024-0007" {
		t.Fatalf("unexpected display id %q", got)
	}
	if got := FormatDisplayID("ORC", 2024, 12345); got != "ORC-2024-12345" {
		t.Fatalf("unexpected display id %q", got)
	}
}

func TestBudgetUseCase_SetStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBudgetUseCase(ctrl)

		_, err := uc.SetStatus(context.Background(), "b-1", "archived")
		if !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusApproved).Return(entities.Budget{}, nil)

		_, err := uc.SetStatus(context.Background(), "b-1", entities.BudgetStatusApproved)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusSentToAccount).
			Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusSentToAccount}, nil)

		res, err := uc.SetStatus(context.Background(), " b-1 ", entities.BudgetStatusSentToAccount)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BudgetStatusSentToAccount {
			t.Fatalf("unexpected status %s", res.Status)
		}
	})
}

func TestBudgetUseCase_SaveVersion(t *testing.T) {
	budget := entities.Budget{ID: "b-1", ClientID: "c-1", Type: entities.CategoryClosedCaption, LatestVersion: 2}

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.SaveVersion(context.Background(), SaveVersionInput{BudgetID: "b-1", Payload: ccPayload(1)})
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("payload type mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		film := budget
		film.Type = entities.CategoryFilm
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(film, nil)

		_, err := uc.SaveVersion(context.Background(), SaveVersionInput{BudgetID: "b-1", Payload: ccPayload(1)})
		if !errors.Is(err, ErrPayloadTypeMismatch) {
			t.Fatalf("expected ErrPayloadTypeMismatch, got %v", err)
		}
	})

	t.Run("appends next version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.versions.EXPECT().GetLatest(gomock.Any(), "b-1").Return(entities.Version{ID: "v-2", VersionNumber: 2}, nil)
		m.versions.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.Version{})).DoAndReturn(
			func(_ context.Context, v entities.Version) (entities.Version, error) {
				if v.VersionNumber != 3 || v.ID == "" || v.BudgetID != "b-1" {
					t.Fatalf("unexpected version: %+v", v)
				}
				if v.TotalGeneral != 122000 || !v.Autosave {
					t.Fatalf("unexpected totals: %+v", v)
				}
				if v.Payload.SchemaVersion != entities.CurrentPayloadSchema {
					t.Fatalf("expected normalized payload")
				}
				return v, nil
			},
		)
		m.budgets.EXPECT().SetLatestVersion(gomock.Any(), "b-1", 3).Return(entities.Budget{ID: "b-1", LatestVersion: 3}, nil)

		res, err := uc.SaveVersion(context.Background(), SaveVersionInput{BudgetID: "b-1", Payload: ccPayload(60000, 40000), Autosave: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Budget.LatestVersion != 3 || res.Version.VersionNumber != 3 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Summary.Combined.Total != 122000 {
			t.Fatalf("expected 122000, got %d", res.Summary.Combined.Total)
		}
	})

	t.Run("retries on concurrent append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		gomock.InOrder(
			m.versions.EXPECT().GetLatest(gomock.Any(), "b-1").Return(entities.Version{ID: "v-2", VersionNumber: 2}, nil),
			m.versions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.Version{}, interfaces.ErrVersionConflict),
			m.versions.EXPECT().GetLatest(gomock.Any(), "b-1").Return(entities.Version{ID: "v-3", VersionNumber: 3}, nil),
			m.versions.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, v entities.Version) (entities.Version, error) {
					if v.VersionNumber != 4 {
						t.Fatalf("expected version 4, got %d", v.VersionNumber)
					}
					return v, nil
				},
			),
		)
		m.budgets.EXPECT().SetLatestVersion(gomock.Any(), "b-1", 4).Return(entities.Budget{ID: "b-1", LatestVersion: 4}, nil)

		if _, err := uc.SaveVersion(context.Background(), SaveVersionInput{BudgetID: "b-1", Payload: ccPayload(1)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.versions.EXPECT().GetLatest(gomock.Any(), "b-1").Return(entities.Version{}, nil).Times(maxAppendAttempts)
		m.versions.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.Version{}, interfaces.ErrVersionConflict).Times(maxAppendAttempts)

		_, err := uc.SaveVersion(context.Background(), SaveVersionInput{BudgetID: "b-1", Payload: ccPayload(1)})
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestBudgetUseCase_Totals(t *testing.T) {
	t.Run("no versions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		m.versions.EXPECT().GetLatest(gomock.Any(), "b-1").Return(entities.Version{}, nil)

		_, err := uc.Totals(context.Background(), "b-1")
		if !errors.Is(err, ErrNoVersions) {
			t.Fatalf("expected ErrNoVersions, got %v", err)
		}
	})

	t.Run("prices latest version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCase(ctrl)
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", ClientID: "c-1", Type: entities.CategoryClosedCaption}, nil)
		m.versions.EXPECT().GetLatest(gomock.Any(), "b-1").Return(entities.Version{ID: "v-1", VersionNumber: 1, Payload: ccPayload(333).Normalize()}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", HonorarioPercent: percent("50")}, nil)

		res, err := uc.Totals(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Summary.Combined.Honorario != 167 {
			t.Fatalf("expected half-up honorario 167, got %d", res.Summary.Combined.Honorario)
		}
	})
}

func TestBudgetUseCase_Export(t *testing.T) {
	t.Run("unsupported format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBudgetUseCase(ctrl)

		_, err := uc.Export(context.Background(), "b-1", "docx")
		if !errors.Is(err, ErrUnsupportedExportFormat) {
			t.Fatalf("expected ErrUnsupportedExportFormat, got %v", err)
		}
	})

	t.Run("renders latest version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mock_interfaces.NewMockIBudgetExporter(ctrl)
		exporter.EXPECT().Format().Return(interfaces.ExportCSV)
		uc, m := newBudgetUseCase(ctrl, exporter)

		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", ClientID: "c-1", ProductID: "p-1", Type: entities.CategoryClosedCaption}, nil)
		m.versions.EXPECT().GetLatest(gomock.Any(), "b-1").Return(entities.Version{ID: "v-1", VersionNumber: 1, Payload: ccPayload(1000).Normalize()}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "ACME"}, nil).Times(2)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Name: "Refri"}, nil)
		exporter.EXPECT().Export(gomock.Any(), gomock.AssignableToTypeOf(interfaces.BudgetDocument{})).DoAndReturn(
			func(_ context.Context, doc interfaces.BudgetDocument) (interfaces.ExportedFile, error) {
				if doc.Client.Name != "ACME" || doc.Product.Name != "Refri" || doc.Locale != "pt-BR" {
					t.Fatalf("unexpected document: %+v", doc)
				}
				if doc.Summary.Combined.Total != 1220 {
					t.Fatalf("expected 1220, got %d", doc.Summary.Combined.Total)
				}
				return interfaces.ExportedFile{FileName: "b.csv", Data: []byte("x")}, nil
			},
		)

		file, err := uc.Export(context.Background(), "b-1", "CSV")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if file.FileName != "b.csv" {
			t.Fatalf("unexpected file: %+v", file)
		}
	})
}
