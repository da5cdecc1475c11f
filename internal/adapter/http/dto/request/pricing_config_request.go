package request

import (
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/money"
)

// PricingConfigRequest updates the per-head prices and the deposit percentage.
type PricingConfigRequest struct {
	AdultPrice     float64 `json:"adult_price" binding:"required"`
	ChildPrice     float64 `json:"child_price" binding:"required"`
	DepositPercent int     `json:"deposit_percent"`
}

func (r PricingConfigRequest) ToPricingConfig() entities.PricingConfig {
	return entities.PricingConfig{
		AdultPrice:     money.FromFloat(r.AdultPrice),
		ChildPrice:     money.FromFloat(r.ChildPrice),
		DepositPercent: r.DepositPercent,
	}
}

// PageViewRequest records one hit on a public page.
type PageViewRequest struct {
	Path string `json:"path" binding:"required"`
}
