package interfaces

import (
	"context"

	"buffet_pizzas/internal/domain/entities"
)

// IPageViewRepository abstracts the visit-analytics sink: one counter per page
// path per day.

type IPageViewRepository interface {
	Increment(ctx context.Context, path, day string) (entities.PageView, error)
	Summary(ctx context.Context) ([]entities.PageView, error)
}
