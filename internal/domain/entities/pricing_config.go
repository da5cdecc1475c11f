package entities

import "buffet_pizzas/internal/domain/money"

// Pricing fallback constants. Missing or unparsable configuration degrades to
// these values instead of failing; see PricingConfigFromValues.
const (
	DefaultAdultPrice     = money.Centavos(5500)
	DefaultChildPrice     = money.Centavos(2700)
	DefaultDepositPercent = 40
)

// Configuration keys as stored in the config table (key/value items).
const (
	ConfigKeyAdultPrice     = "preco_adulto"
	ConfigKeyChildPrice     = "preco_crianca"
	ConfigKeyDepositPercent = "percentual_entrada"
)

// PricingConfig holds the externally configured unit prices. It is an
// immutable input to a pricing computation; children aged 5-9 are charged the
// reduced ChildPrice.

type PricingConfig struct {
	AdultPrice     money.Centavos `json:"adult_price"`
	ChildPrice     money.Centavos `json:"child_price"`
	DepositPercent int            `json:"deposit_percent"`
}

// DefaultPricingConfig returns the documented fallback configuration.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		AdultPrice:     DefaultAdultPrice,
		ChildPrice:     DefaultChildPrice,
		DepositPercent: DefaultDepositPercent,
	}
}

// PricingConfigFromValues resolves a config from raw key/value pairs as read
// from the record store. Each field falls back independently when its value is
// absent or unparsable; this is deliberate graceful degradation, never an
// error.
func PricingConfigFromValues(values map[string]string) PricingConfig {
	cfg := DefaultPricingConfig()
	if v, ok := money.ParseDecimal(values[ConfigKeyAdultPrice]); ok && v > 0 {
		cfg.AdultPrice = v
	}
	if v, ok := money.ParseDecimal(values[ConfigKeyChildPrice]); ok && v > 0 {
		cfg.ChildPrice = v
	}
	if pct, ok := parsePercent(values[ConfigKeyDepositPercent]); ok {
		cfg.DepositPercent = pct
	}
	return cfg
}

func parsePercent(s string) (int, bool) {
	v, ok := money.ParseDecimal(s)
	if !ok {
		return 0, false
	}
	pct := int(v / 100)
	if pct < 0 || pct > 100 {
		return 0, false
	}
	return pct, true
}
