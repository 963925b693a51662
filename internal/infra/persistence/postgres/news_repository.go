package postgres

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

func (repo *newsRepository) Create(ctx context.Context, news *entity.News) error {
	if news.ID == uuid.Nil {
		news.ID = newID()
	}
	m := fromNewsDomain(news)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create news")
	}

	news.CreatedAt = m.CreatedAt
	news.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	var m model.NewsModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrNewsNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find news")
	}

	return toNewsDomain(&m), nil
}

func (repo *newsRepository) Update(ctx context.Context, news *entity.News) error {
	m := fromNewsDomain(news)

	result := repo.db.WithContext(ctx).
		Model(&model.NewsModel{ID: news.ID}).
		Select("title", "thumbnail_url", "thumbnail_public_id", "location", "category", "content",
			"is_published", "first_published_at", "updated_at").
		Updates(m)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update news")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNewsNotFound
	}

	news.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.NewsModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete news")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNewsNotFound
	}

	return nil
}

func (repo *newsRepository) List(ctx context.Context, filter entity.NewsFilter) (*entity.Page[*entity.News], error) {
	query := repo.db.WithContext(ctx).Model(&model.NewsModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count news")
	}

	var models []model.NewsModel
	if err := query.Order("created_at DESC").Scopes(paginate(filter.Pagination)).Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list news")
	}

	return &entity.Page[*entity.News]{
		Items: mapSlice(models, toNewsDomain),
		Total: total,
		Page:  filter.Pagination.Page,
		Limit: filter.Pagination.Limit,
	}, nil
}

func (repo *newsRepository) Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]*entity.News, error) {
	query := repo.db.WithContext(ctx).
		Where("category = ? AND is_published = ? AND id <> ?", category, true, exclude).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.NewsModel
	if err := query.Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list related news")
	}

	return mapSlice(models, toNewsDomain), nil
}
