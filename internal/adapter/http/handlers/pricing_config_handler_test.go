package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"buffet_pizzas/internal/adapter/http/handlers/mocks"
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPricingConfigHandler_GetPricingConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingConfigUseCase(ctrl)
	h := NewPricingConfigHandler(uc)

	uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultPricingConfig(), nil)

	r := gin.New()
	r.GET("/v1/config/pricing", h.GetPricingConfig)

	req := httptest.NewRequest(http.MethodGet, "/v1/config/pricing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"adult_price":55`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"deposit_percent":40`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPricingConfigHandler_UpdatePricingConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingConfigUseCase(ctrl)
		h := NewPricingConfigHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/pricing", h.UpdatePricingConfig)

		req := httptest.NewRequest(http.MethodPut, "/v1/config/pricing", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingConfigUseCase(ctrl)
		h := NewPricingConfigHandler(uc)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PricingConfig{}, usecase.ErrInvalidPricingConfig)

		r := gin.New()
		r.PUT("/v1/config/pricing", h.UpdatePricingConfig)

		body := `{"adult_price":60,"child_price":30,"deposit_percent":200}`
		req := httptest.NewRequest(http.MethodPut, "/v1/config/pricing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success converts to centavos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingConfigUseCase(ctrl)
		h := NewPricingConfigHandler(uc)

		expected := entities.PricingConfig{AdultPrice: 6000, ChildPrice: 3000, DepositPercent: 50}
		uc.EXPECT().Update(gomock.Any(), expected).Return(expected, nil)

		r := gin.New()
		r.PUT("/v1/config/pricing", h.UpdatePricingConfig)

		body := `{"adult_price":60,"child_price":30,"deposit_percent":50}`
		req := httptest.NewRequest(http.MethodPut, "/v1/config/pricing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
