package response

import "buffet_pizzas/internal/domain/entities"

type PricingConfigResponse struct {
	AdultPrice     float64 `json:"adult_price"`
	ChildPrice     float64 `json:"child_price"`
	DepositPercent int     `json:"deposit_percent"`
}

func FromPricingConfig(cfg entities.PricingConfig) PricingConfigResponse {
	return PricingConfigResponse{
		AdultPrice:     cfg.AdultPrice.Float64(),
		ChildPrice:     cfg.ChildPrice.Float64(),
		DepositPercent: cfg.DepositPercent,
	}
}
