package interfaces

import "context"

// IPricingConfigRepository abstracts the key/value config table. Values
// returns every stored pair; resolution and fallback live in the domain, so a
// partially populated (or empty) table is a normal result.

type IPricingConfigRepository interface {
	Values(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}
