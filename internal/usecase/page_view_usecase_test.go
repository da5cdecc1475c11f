package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"buffet_pizzas/internal/domain/entities"
	mock_interfaces "buffet_pizzas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPageViewUseCase_Record(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		uc := NewPageViewUseCase(nil)
		_, err := uc.Record(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPagePath) {
			t.Fatalf("expected ErrInvalidPagePath, got %v", err)
		}
	})

	t.Run("relative path", func(t *testing.T) {
		uc := NewPageViewUseCase(nil)
		_, err := uc.Record(context.Background(), "orcamento")
		if !errors.Is(err, ErrInvalidPagePath) {
			t.Fatalf("expected ErrInvalidPagePath, got %v", err)
		}
	})

	t.Run("success buckets by utc day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPageViewRepository(ctrl)
		uc := NewPageViewUseCase(repo)
		uc.now = func() time.Time { return time.Date(2026, 8, 29, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600)) }

		expected := entities.PageView{Path: "/orcamento", Day: "2026-08-30", Count: 3}
		repo.EXPECT().Increment(gomock.Any(), "/orcamento", "2026-08-30").Return(expected, nil)

		res, err := uc.Record(context.Background(), "/orcamento")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Count != 3 {
			t.Fatalf("unexpected count: %d", res.Count)
		}
	})
}

func TestPageViewUseCase_Summary(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPageViewRepository(ctrl)
		uc := NewPageViewUseCase(repo)
		repo.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Summary(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPageViewRepository(ctrl)
		uc := NewPageViewUseCase(repo)
		repo.EXPECT().Summary(gomock.Any()).Return([]entities.PageView{
			{Path: "/", Day: "2026-08-29", Count: 12},
			{Path: "/orcamento", Day: "2026-08-29", Count: 5},
		}, nil)

		res, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
