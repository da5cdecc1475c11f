package usecase

import (
	"context"
	"errors"
	"testing"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/money"
	mock_interfaces "buffet_pizzas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPricingConfigUseCase_Get(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := NewPricingConfigUseCase(repo)
		repo.EXPECT().Values(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Get(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty store falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := NewPricingConfigUseCase(repo)
		repo.EXPECT().Values(gomock.Any()).Return(map[string]string{}, nil)

		cfg, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AdultPrice != entities.DefaultAdultPrice || cfg.ChildPrice != entities.DefaultChildPrice {
			t.Fatalf("expected default prices, got %+v", cfg)
		}
		if cfg.DepositPercent != entities.DefaultDepositPercent {
			t.Fatalf("expected default percent, got %d", cfg.DepositPercent)
		}
	})

	t.Run("unparsable value falls back per field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := NewPricingConfigUseCase(repo)
		repo.EXPECT().Values(gomock.Any()).Return(map[string]string{
			entities.ConfigKeyAdultPrice:     "60,00",
			entities.ConfigKeyChildPrice:     "banana",
			entities.ConfigKeyDepositPercent: "35",
		}, nil)

		cfg, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AdultPrice != money.Centavos(6000) {
			t.Fatalf("unexpected adult price: %d", cfg.AdultPrice)
		}
		if cfg.ChildPrice != entities.DefaultChildPrice {
			t.Fatalf("expected fallback child price, got %d", cfg.ChildPrice)
		}
		if cfg.DepositPercent != 35 {
			t.Fatalf("unexpected percent: %d", cfg.DepositPercent)
		}
	})
}

func TestPricingConfigUseCase_Update(t *testing.T) {
	t.Run("non positive price", func(t *testing.T) {
		uc := NewPricingConfigUseCase(nil)
		_, err := uc.Update(context.Background(), entities.PricingConfig{AdultPrice: 0, ChildPrice: 2700, DepositPercent: 40})
		if !errors.Is(err, ErrInvalidPricingConfig) {
			t.Fatalf("expected ErrInvalidPricingConfig, got %v", err)
		}
	})

	t.Run("percent out of range", func(t *testing.T) {
		uc := NewPricingConfigUseCase(nil)
		_, err := uc.Update(context.Background(), entities.PricingConfig{AdultPrice: 5500, ChildPrice: 2700, DepositPercent: 101})
		if !errors.Is(err, ErrInvalidPricingConfig) {
			t.Fatalf("expected ErrInvalidPricingConfig, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := NewPricingConfigUseCase(repo)
		repo.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db")).MinTimes(1)

		_, err := uc.Update(context.Background(), entities.PricingConfig{AdultPrice: 5500, ChildPrice: 2700, DepositPercent: 40})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success writes all three keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := NewPricingConfigUseCase(repo)
		repo.EXPECT().Set(gomock.Any(), entities.ConfigKeyAdultPrice, "60,00").Return(nil)
		repo.EXPECT().Set(gomock.Any(), entities.ConfigKeyChildPrice, "30,00").Return(nil)
		repo.EXPECT().Set(gomock.Any(), entities.ConfigKeyDepositPercent, "50").Return(nil)

		cfg := entities.PricingConfig{AdultPrice: 6000, ChildPrice: 3000, DepositPercent: 50}
		res, err := uc.Update(context.Background(), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != cfg {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
