package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/usecase/interfaces"
)

var ErrInvalidPagePath = errors.New("invalid page path")

// IPageViewUseCase is the visit-analytics surface: record a hit for a public
// page, read the aggregated counters.

type IPageViewUseCase interface {
	Record(ctx context.Context, path string) (entities.PageView, error)
	Summary(ctx context.Context) ([]entities.PageView, error)
}

type PageViewUseCase struct {
	repo interfaces.IPageViewRepository
	now  func() time.Time
}

var _ IPageViewUseCase = (*PageViewUseCase)(nil)

func NewPageViewUseCase(repo interfaces.IPageViewRepository) *PageViewUseCase {
	return &PageViewUseCase{repo: repo, now: time.Now}
}

func (u *PageViewUseCase) Record(ctx context.Context, path string) (entities.PageView, error) {
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "/") {
		return entities.PageView{}, ErrInvalidPagePath
	}

	day := u.now().UTC().Format("2006-01-02")
	return u.repo.Increment(ctx, path, day)
}

func (u *PageViewUseCase) Summary(ctx context.Context) ([]entities.PageView, error) {
	return u.repo.Summary(ctx)
}
