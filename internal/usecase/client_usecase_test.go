package usecase

import (
	"context"
	"errors"
	"testing"

	"orcamentos_rtv/internal/domain/entities"
	mock_interfaces "orcamentos_rtv/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func percent(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestClientUseCase_CreateClient(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.CreateClient(context.Background(), "  ", "", nil)
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("honorario out of range", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.CreateClient(context.Background(), "ACME", "", percent("101"))
		if !errors.Is(err, ErrInvalidPercent) {
			t.Fatalf("expected ErrInvalidPercent, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil)

		clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Name != "ACME" || c.Document != "12.345" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.HonorarioPercent == nil || c.HonorarioPercent.String() != "12" {
					t.Fatalf("expected honorario 12, got %v", c.HonorarioPercent)
				}
				if c.CreatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		if _, err := uc.CreateClient(context.Background(), " ACME ", " 12.345 ", percent("12")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_UpdateHonorario(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil)

		clients.EXPECT().UpdateHonorario(gomock.Any(), "c-1", gomock.Any()).Return(entities.Client{}, nil)

		_, err := uc.UpdateHonorario(context.Background(), "c-1", percent("10"))
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("clear honorario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil)

		clients.EXPECT().UpdateHonorario(gomock.Any(), "c-1", gomock.Nil()).Return(entities.Client{ID: "c-1"}, nil)

		res, err := uc.UpdateHonorario(context.Background(), " c-1 ", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.HonorarioPercent != nil {
			t.Fatalf("expected cleared honorario")
		}
	})

	t.Run("negative", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.UpdateHonorario(context.Background(), "c-1", percent("-1"))
		if !errors.Is(err, ErrInvalidPercent) {
			t.Fatalf("expected ErrInvalidPercent, got %v", err)
		}
	})
}

func TestClientUseCase_Products(t *testing.T) {
	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients, nil)

		clients.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Client{}, nil)

		_, err := uc.CreateProduct(context.Background(), "c-9", "Refrigerante")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("create product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewClientUseCase(clients, products)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		products.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ClientID != "c-1" || p.Name != "Refrigerante" || p.ID == "" {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.CreateProduct(context.Background(), "c-1", "Refrigerante"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list requires client", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil)
		_, err := uc.ListProducts(context.Background(), "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})
}
