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

func TestPageViewHandler_RecordPageView(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPageViewUseCase(ctrl)
		h := NewPageViewHandler(uc)

		r := gin.New()
		r.POST("/v1/pageviews", h.RecordPageView)

		req := httptest.NewRequest(http.MethodPost, "/v1/pageviews", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("relative path rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPageViewUseCase(ctrl)
		h := NewPageViewHandler(uc)

		uc.EXPECT().Record(gomock.Any(), "orcamento").Return(entities.PageView{}, usecase.ErrInvalidPagePath)

		r := gin.New()
		r.POST("/v1/pageviews", h.RecordPageView)

		req := httptest.NewRequest(http.MethodPost, "/v1/pageviews", bytes.NewBufferString(`{"path":"orcamento"}`))
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
		uc := mocks.NewMockIPageViewUseCase(ctrl)
		h := NewPageViewHandler(uc)

		uc.EXPECT().Record(gomock.Any(), "/orcamento").Return(entities.PageView{Path: "/orcamento", Day: "2026-08-29", Count: 6}, nil)

		r := gin.New()
		r.POST("/v1/pageviews", h.RecordPageView)

		req := httptest.NewRequest(http.MethodPost, "/v1/pageviews", bytes.NewBufferString(`{"path":"/orcamento"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"count":6`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPageViewHandler_PageViewSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPageViewUseCase(ctrl)
	h := NewPageViewHandler(uc)

	uc.EXPECT().Summary(gomock.Any()).Return([]entities.PageView{
		{Path: "/", Day: "2026-08-29", Count: 12},
	}, nil)

	r := gin.New()
	r.GET("/v1/pageviews/summary", h.PageViewSummary)

	req := httptest.NewRequest(http.MethodGet, "/v1/pageviews/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"path":"/"`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
