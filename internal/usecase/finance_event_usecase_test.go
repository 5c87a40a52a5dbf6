package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"orcamentos_rtv/internal/domain/entities"
	mock_interfaces "orcamentos_rtv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFinanceEventUseCase_ImportText(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		uc := NewFinanceEventUseCase(nil, nil, nil)
		_, err := uc.ImportText(context.Background(), " \n ", "fin@agencia.com.br")
		if !errors.Is(err, ErrEmptyImport) {
			t.Fatalf("expected ErrEmptyImport, got %v", err)
		}
	})

	t.Run("parser error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parser := mock_interfaces.NewMockIFinanceSheetParser(ctrl)
		uc := NewFinanceEventUseCase(nil, parser, nil)

		parser.EXPECT().ParseText("x").Return(nil, errors.New("bad row"))

		_, err := uc.ImportText(context.Background(), "x", "fin@agencia.com.br")
		if !errors.Is(err, ErrInvalidFinanceSheet) {
			t.Fatalf("expected ErrInvalidFinanceSheet, got %v", err)
		}
	})

	t.Run("stores rows with one import id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinanceEventRepository(ctrl)
		parser := mock_interfaces.NewMockIFinanceSheetParser(ctrl)
		uc := NewFinanceEventUseCase(repo, parser, nil)

		parser.EXPECT().ParseText(gomock.Any()).Return([]entities.FinanceEvent{
			{ClientName: "ACME", SourceRow: 1},
			{ClientName: "Beta", SourceRow: 2},
		}, nil)
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, events []entities.FinanceEvent) error {
				if len(events) != 2 {
					t.Fatalf("expected 2 events, got %d", len(events))
				}
				if events[0].ImportID == "" || events[0].ImportID != events[1].ImportID {
					t.Fatalf("expected a shared import id: %+v", events)
				}
				if events[0].ID == events[1].ID || events[1].ImportedBy != "fin@agencia.com.br" {
					t.Fatalf("unexpected events: %+v", events)
				}
				return nil
			},
		)

		res, err := uc.ImportText(context.Background(), "ACME\t...", " fin@agencia.com.br ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Imported != 2 {
			t.Fatalf("expected 2 imported, got %d", res.Imported)
		}
	})
}

func TestFinanceEventUseCase_ImportFile(t *testing.T) {
	t.Run("pdf rejected", func(t *testing.T) {
		uc := NewFinanceEventUseCase(nil, nil, nil)
		_, err := uc.ImportFile(context.Background(), "extrato.PDF", bytes.NewReader(nil), "x")
		if !errors.Is(err, ErrPDFImportNotSupported) {
			t.Fatalf("expected ErrPDFImportNotSupported, got %v", err)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		uc := NewFinanceEventUseCase(nil, nil, nil)
		_, err := uc.ImportFile(context.Background(), "planilha.ods", bytes.NewReader(nil), "x")
		if !errors.Is(err, ErrUnsupportedImportFile) {
			t.Fatalf("expected ErrUnsupportedImportFile, got %v", err)
		}
	})

	t.Run("xlsx goes to the sheet parser", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinanceEventRepository(ctrl)
		parser := mock_interfaces.NewMockIFinanceSheetParser(ctrl)
		uc := NewFinanceEventUseCase(repo, parser, nil)

		parser.EXPECT().ParseXLSX(gomock.Any()).Return([]entities.FinanceEvent{{ClientName: "ACME"}}, nil)
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.ImportFile(context.Background(), "Financeiro.xlsx", bytes.NewReader([]byte("PK")), "x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("csv is read as text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinanceEventRepository(ctrl)
		parser := mock_interfaces.NewMockIFinanceSheetParser(ctrl)
		uc := NewFinanceEventUseCase(repo, parser, nil)

		parser.EXPECT().ParseText("ACME;AP1").Return([]entities.FinanceEvent{{ClientName: "ACME"}}, nil)
		repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.ImportFile(context.Background(), "f.csv", strings.NewReader("ACME;AP1"), "x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sheet without rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		parser := mock_interfaces.NewMockIFinanceSheetParser(ctrl)
		uc := NewFinanceEventUseCase(nil, parser, nil)

		parser.EXPECT().ParseXLSX(gomock.Any()).Return(nil, nil)

		_, err := uc.ImportFile(context.Background(), "f.xlsx", bytes.NewReader(nil), "x")
		if !errors.Is(err, ErrEmptyImport) {
			t.Fatalf("expected ErrEmptyImport, got %v", err)
		}
	})
}
