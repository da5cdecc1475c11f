package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"buffet_pizzas/internal/adapter/http/handlers/mocks"
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc, nil)

		uc.EXPECT().CreateFromQuote(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrInvalidEventDate)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := `{"client_name":"Maria da Silva","event_date":"03/10/2026"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with quote block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		config := mocks.NewMockIPricingConfigUseCase(ctrl)
		h := NewBookingHandler(uc, config)

		created := entities.Booking{
			ID:         "id-1",
			ClientName: "Maria da Silva",
			EventDate:  "2026-10-03",
			Adults:     40,
			Children:   10,
			Status:     entities.BookingStatusPendente,
		}
		uc.EXPECT().CreateFromQuote(gomock.Any(), gomock.Any()).Return(created, nil)
		config.EXPECT().Get(gomock.Any()).Return(entities.DefaultPricingConfig(), nil)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := `{"client_name":"Maria da Silva","event_date":"2026-10-03","adults":40,"children":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			ID    string `json:"id"`
			Quote *struct {
				Total          string `json:"total"`
				DepositAmount  string `json:"deposit_amount"`
				DepositPercent int    `json:"deposit_percent"`
				Remaining      string `json:"remaining"`
			} `json:"quote"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.ID != "id-1" || resp.Quote == nil {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
		if resp.Quote.Total != "2470,00" || resp.Quote.DepositAmount != "988,00" || resp.Quote.Remaining != "1482,00" {
			t.Fatalf("unexpected quote: %+v", resp.Quote)
		}
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc, nil)

		uc.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		r := gin.New()
		r.GET("/v1/bookings/:id", h.GetBooking)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/id-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("config failure degrades to plain booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		config := mocks.NewMockIPricingConfigUseCase(ctrl)
		h := NewBookingHandler(uc, config)

		uc.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Booking{ID: "id-1", Adults: 40}, nil)
		config.EXPECT().Get(gomock.Any()).Return(entities.PricingConfig{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/bookings/:id", h.GetBooking)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/id-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte(`"quote"`)) {
			t.Fatalf("expected no quote block: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_SetDepositOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc, nil)

		uc.EXPECT().SetDepositOverride(gomock.Any(), "id-1", "abc").Return(entities.Booking{}, usecase.ErrInvalidDepositValue)

		r := gin.New()
		r.PUT("/v1/bookings/:id/deposit", h.SetDepositOverride)

		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/id-1/deposit", bytes.NewBufferString(`{"value":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc, nil)

		updated := entities.Booking{ID: "id-1", DepositOverride: 50000}
		uc.EXPECT().SetDepositOverride(gomock.Any(), "id-1", "500,00").Return(updated, nil)

		r := gin.New()
		r.PUT("/v1/bookings/:id/deposit", h.SetDepositOverride)

		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/id-1/deposit", bytes.NewBufferString(`{"value":"500,00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"deposit_override":"500,00"`)) {
			t.Fatalf("expected formatted override: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_StatusEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc, nil)

		uc.EXPECT().Confirm(gomock.Any(), "id-1").Return(entities.Booking{ID: "id-1", Status: entities.BookingStatusConfirmado}, nil)

		r := gin.New()
		r.PATCH("/v1/bookings/:id/confirm", h.ConfirmBooking)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/id-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"confirmado"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancel not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc, nil)

		uc.EXPECT().Cancel(gomock.Any(), "missing").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		r := gin.New()
		r.PATCH("/v1/bookings/:id/cancel", h.CancelBooking)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/missing/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
