package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"buffet_pizzas/internal/domain/document"
	"buffet_pizzas/internal/domain/entities"
	mock_interfaces "buffet_pizzas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_Generate(t *testing.T) {
	confirmed := entities.Booking{
		ID:                 "11112222-3333-4444-5555-666677778888",
		ClientName:         "Maria da Silva",
		ClientCPF:          "123.456.789-00",
		ResidentialAddress: "Rua das Acácias, 120",
		EventAddress:       "Salão Primavera, Av. Central, 900",
		EventDate:          "2026-10-03",
		StartTime:          "19:00",
		Adults:             40,
		Children:           10,
		Status:             entities.BookingStatusConfirmado,
	}

	t.Run("invalid kind", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil)
		_, err := uc.Generate(context.Background(), entities.DocumentKind("nota"), "id-1", nil, nil)
		if !errors.Is(err, ErrInvalidDocumentKind) {
			t.Fatalf("expected ErrInvalidDocumentKind, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewDocumentUseCase(bookings, nil, nil)
		bookings.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Booking{}, nil)

		_, err := uc.Generate(context.Background(), entities.DocumentKindContrato, "id-1", nil, nil)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("config error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		config := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := NewDocumentUseCase(bookings, config, nil)
		bookings.EXPECT().GetByID(gomock.Any(), confirmed.ID).Return(confirmed, nil)
		config.EXPECT().Values(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Generate(context.Background(), entities.DocumentKindContrato, confirmed.ID, nil, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("renderer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		config := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(bookings, config, renderer)
		bookings.EXPECT().GetByID(gomock.Any(), confirmed.ID).Return(confirmed, nil)
		config.EXPECT().Values(gomock.Any()).Return(map[string]string{}, nil)
		renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("pdf"))

		_, err := uc.Generate(context.Background(), entities.DocumentKindContrato, confirmed.ID, nil, nil)
		if err == nil || err.Error() != "pdf" {
			t.Fatalf("expected pdf error, got %v", err)
		}
	})

	t.Run("contract success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		config := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(bookings, config, renderer)
		uc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

		bookings.EXPECT().GetByID(gomock.Any(), confirmed.ID).Return(confirmed, nil)
		config.EXPECT().Values(gomock.Any()).Return(map[string]string{}, nil)
		renderer.EXPECT().Render(gomock.AssignableToTypeOf([]document.Page{})).DoAndReturn(
			func(pages []document.Page) ([]byte, error) {
				if len(pages) < 2 {
					t.Fatalf("expected at least two pages, got %d", len(pages))
				}
				return []byte("%PDF-fake"), nil
			},
		)

		doc, err := uc.Generate(context.Background(), entities.DocumentKindContrato, confirmed.ID, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Kind != entities.DocumentKindContrato {
			t.Fatalf("unexpected kind: %s", doc.Kind)
		}
		if doc.FileName != "contrato_Maria_da_Silva.pdf" {
			t.Fatalf("unexpected file name: %s", doc.FileName)
		}
		// 40 adults and 10 children at default prices
		if !strings.Contains(doc.Body, "R$ 2470,00") {
			t.Fatalf("expected default-price total in body:\n%s", doc.Body)
		}
		if !strings.Contains(doc.Body, "988,00") {
			t.Fatalf("expected 40%% deposit in body")
		}
		if len(doc.PDF) == 0 {
			t.Fatalf("expected rendered bytes")
		}
	})

	t.Run("receipt honors deposit override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		config := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(bookings, config, renderer)
		uc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

		overridden := confirmed
		overridden.DepositOverride = 50000
		bookings.EXPECT().GetByID(gomock.Any(), overridden.ID).Return(overridden, nil)
		config.EXPECT().Values(gomock.Any()).Return(map[string]string{}, nil)
		renderer.EXPECT().Render(gomock.Any()).Return([]byte("%PDF-fake"), nil)

		doc, err := uc.Generate(context.Background(), entities.DocumentKindRecibo, overridden.ID, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(doc.Body, "R$ 500,00") {
			t.Fatalf("expected overridden deposit in receipt:\n%s", doc.Body)
		}
		if doc.FileName != "recibo_Maria_da_Silva.pdf" {
			t.Fatalf("unexpected file name: %s", doc.FileName)
		}
	})
}
