package usecase

import (
	"context"
	"errors"
	"testing"

	"orcamentos_rtv/internal/domain/entities"
	mock_interfaces "orcamentos_rtv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSupplierUseCase_CreateSupplier(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewSupplierUseCase(nil)
		_, err := uc.CreateSupplier(context.Background(), entities.Supplier{Name: "   "})
		if !errors.Is(err, ErrInvalidSupplierName) {
			t.Fatalf("expected ErrInvalidSupplierName, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewSupplierUseCase(nil)
		_, err := uc.CreateSupplier(context.Background(), entities.Supplier{Name: "Produtora", Category: "radio"})
		if !errors.Is(err, ErrInvalidSupplierCategory) {
			t.Fatalf("expected ErrInvalidSupplierCategory, got %v", err)
		}
	})

	t.Run("normalizes and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Supplier) (entities.Supplier, error) {
				if s.ID == "" || s.CreatedAt.IsZero() {
					t.Fatalf("expected id and created_at to be set, got %+v", s)
				}
				if s.Name != "Produtora Sol" || s.Email != "contato@sol.com.br" {
					t.Fatalf("unexpected normalization: %+v", s)
				}
				return s, nil
			})

		out, err := uc.CreateSupplier(context.Background(), entities.Supplier{
			Name:     " Produtora Sol ",
			Email:    " Contato@Sol.com.br ",
			Category: entities.CategoryFilm,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category != entities.CategoryFilm {
			t.Fatalf("expected film category, got %q", out.Category)
		}
	})
}

func TestSupplierUseCase_ListSuppliers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISupplierRepository(ctrl)
	uc := NewSupplierUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Supplier{{ID: "s1"}, {ID: "s2"}}, nil)

	got, err := uc.ListSuppliers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(got))
	}
}
