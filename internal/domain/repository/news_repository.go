package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// NewsRepository persists articles. Missing rows yield domainerrors.ErrNewsNotFound.
type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error)
	Update(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entity.NewsFilter) (*entity.Page[*entity.News], error)

	// Related returns published articles of a category, newest first, excluding one id.
	Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]*entity.News, error)
}
