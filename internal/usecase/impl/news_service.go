package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

const (
	newsSuggestionLimit = 3
	defaultRecentNews   = 5
)

type newsService struct {
	newsRepo   repository.NewsRepository
	imageStore service.ImageStore
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewsServiceParams holds dependencies for NewsService, injected by Fx.
type NewsServiceParams struct {
	fx.In

	NewsRepo   repository.NewsRepository
	ImageStore service.ImageStore
	Clock      clockwork.Clock
	Logger     *slog.Logger
}

// NewNewsService is the constructor for newsService.
func NewNewsService(params NewsServiceParams) usecase.NewsUsecase {
	return &newsService{
		newsRepo:   params.NewsRepo,
		imageStore: params.ImageStore,
		clock:      params.Clock,
		logger:     params.Logger,
	}
}

func (srv *newsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *newsService) Create(ctx context.Context, input *usecase.CreateNewsInput) (*entity.News, error) {
	if err := validateNewsContent(input.Content); err != nil {
		return nil, err
	}

	news := &entity.News{
		Title:    strings.TrimSpace(input.Title),
		Location: input.Location,
		Category: input.Category,
		Content:  input.Content,
	}
	if input.IsPublished {
		news.Publish(srv.clock.Now())
	}

	if input.Thumbnail != nil {
		thumbnail, err := srv.imageStore.Upload(ctx, *input.Thumbnail, constants.FolderNews)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload news thumbnail")
		}
		news.Thumbnail = thumbnail
	}

	if err := srv.newsRepo.Create(ctx, news); err != nil {
		srv.discardThumbnail(ctx, news.Thumbnail)

		return nil, errors.Wrap(err, "failed to create news")
	}

	srv.log(ctx).Info("News created", slog.Any("newsID", news.ID), slog.Bool("published", news.IsPublished))

	return news, nil
}

func (srv *newsService) Update(ctx context.Context, newsID uuid.UUID, input *usecase.UpdateNewsInput) (*entity.News, error) {
	if input.Content != nil {
		if err := validateNewsContent(input.Content); err != nil {
			return nil, err
		}
	}

	news, err := srv.newsRepo.FindByID(ctx, newsID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find news")
	}

	if input.Title != nil {
		news.Title = strings.TrimSpace(*input.Title)
	}
	if input.Location != nil {
		news.Location = *input.Location
	}
	if input.Category != nil {
		news.Category = *input.Category
	}
	if input.Content != nil {
		news.Content = input.Content
	}

	previous := news.Thumbnail
	if input.Thumbnail != nil {
		thumbnail, err := srv.imageStore.Upload(ctx, *input.Thumbnail, constants.FolderNews)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload news thumbnail")
		}
		news.Thumbnail = thumbnail
	}

	if err := srv.newsRepo.Update(ctx, news); err != nil {
		if input.Thumbnail != nil {
			srv.discardThumbnail(ctx, news.Thumbnail)
		}

		return nil, errors.Wrap(err, "failed to update news")
	}

	if input.Thumbnail != nil {
		srv.discardThumbnail(ctx, previous)
	}

	return news, nil
}

func (srv *newsService) UpdateStatus(ctx context.Context, newsID uuid.UUID, published bool) (*entity.News, error) {
	news, err := srv.newsRepo.FindByID(ctx, newsID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find news")
	}

	if published {
		news.Publish(srv.clock.Now())
	} else {
		news.IsPublished = false
	}

	if err := srv.newsRepo.Update(ctx, news); err != nil {
		return nil, errors.Wrap(err, "failed to update news status")
	}

	return news, nil
}

func (srv *newsService) Delete(ctx context.Context, newsID uuid.UUID) error {
	news, err := srv.newsRepo.FindByID(ctx, newsID)
	if err != nil {
		return errors.Wrap(err, "failed to find news")
	}

	if err := srv.newsRepo.Delete(ctx, newsID); err != nil {
		return errors.Wrap(err, "failed to delete news")
	}

	srv.discardThumbnail(ctx, news.Thumbnail)

	return nil
}

func (srv *newsService) List(ctx context.Context, filter entity.NewsFilter) (*entity.Page[*entity.News], error) {
	filter.Pagination = normalizePagination(filter.Pagination)

	page, err := srv.newsRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return page, nil
}

func (srv *newsService) Get(ctx context.Context, newsID uuid.UUID) (*usecase.NewsDetail, error) {
	news, err := srv.newsRepo.FindByID(ctx, newsID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find news")
	}
	if !news.IsPublished {
		return nil, domainerrors.ErrNewsNotFound
	}

	suggestions, err := srv.newsRepo.Related(ctx, news.Category, news.ID, newsSuggestionLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find related news")
	}

	return &usecase.NewsDetail{News: news, Suggestions: suggestions}, nil
}

func (srv *newsService) Recent(ctx context.Context, limit int) ([]*entity.News, error) {
	if limit < 1 {
		limit = defaultRecentNews
	}

	page, err := srv.newsRepo.List(ctx, entity.NewsFilter{
		PublishedOnly: true,
		Pagination:    entity.Pagination{Page: 1, Limit: min(limit, constants.MaxLimit)},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent news")
	}

	return page.Items, nil
}

func (srv *newsService) discardThumbnail(ctx context.Context, thumbnail entity.Image) {
	if thumbnail.PublicID == "" {
		return
	}
	if err := srv.imageStore.Delete(ctx, thumbnail.PublicID); err != nil {
		srv.log(ctx).Warn("Failed to delete news thumbnail", slog.String("publicID", thumbnail.PublicID), slog.Any("error", err))
	}
}

// validateNewsContent accepts any well-formed JSON document; the editor format is opaque here.
func validateNewsContent(content json.RawMessage) error {
	if len(content) == 0 || !json.Valid(content) {
		return domainerrors.ErrValidationFailed.WithDetails("content must be a JSON document")
	}

	return nil
}
