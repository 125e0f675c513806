// Package usecase implements the business logic for the news feature.
package usecase

import (
	"context"

	"stockoracle_backend/internal/feature/news/domain/entity"
)

// NewsRepository はニュース記事の取得元を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type NewsRepository interface {
	Latest(ctx context.Context) ([]entity.NewsItem, error)
}

// NewsUsecase provides business logic for market news.
type NewsUsecase struct {
	repo NewsRepository
}

// NewNewsUsecase creates a new NewsUsecase with the given repository.
func NewNewsUsecase(r NewsRepository) *NewsUsecase {
	return &NewsUsecase{repo: r}
}

// LatestNews は新しい順に記事を返します。
func (u *NewsUsecase) LatestNews(ctx context.Context) ([]entity.NewsItem, error) {
	return u.repo.Latest(ctx)
}
