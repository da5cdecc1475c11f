package usecase

import (
	"context"
	"errors"
	"strconv"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/usecase/interfaces"
)

var ErrInvalidPricingConfig = errors.New("invalid pricing config")

// IPricingConfigUseCase resolves and updates the pricing configuration.
//
// Reads never fail on content: missing or unparsable values fall back to the
// documented defaults. Only a store failure surfaces as an error.

type IPricingConfigUseCase interface {
	Get(ctx context.Context) (entities.PricingConfig, error)
	Update(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error)
}

type PricingConfigUseCase struct {
	repo interfaces.IPricingConfigRepository
}

var _ IPricingConfigUseCase = (*PricingConfigUseCase)(nil)

func NewPricingConfigUseCase(repo interfaces.IPricingConfigRepository) *PricingConfigUseCase {
	return &PricingConfigUseCase{repo: repo}
}

func (u *PricingConfigUseCase) Get(ctx context.Context) (entities.PricingConfig, error) {
	values, err := u.repo.Values(ctx)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	return entities.PricingConfigFromValues(values), nil
}

func (u *PricingConfigUseCase) Update(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	if cfg.AdultPrice <= 0 || cfg.ChildPrice <= 0 {
		return entities.PricingConfig{}, ErrInvalidPricingConfig
	}
	if cfg.DepositPercent < 0 || cfg.DepositPercent > 100 {
		return entities.PricingConfig{}, ErrInvalidPricingConfig
	}

	pairs := map[string]string{
		entities.ConfigKeyAdultPrice:     cfg.AdultPrice.Format(),
		entities.ConfigKeyChildPrice:     cfg.ChildPrice.Format(),
		entities.ConfigKeyDepositPercent: strconv.Itoa(cfg.DepositPercent),
	}
	for key, value := range pairs {
		if err := u.repo.Set(ctx, key, value); err != nil {
			return entities.PricingConfig{}, err
		}
	}
	return cfg, nil
}
