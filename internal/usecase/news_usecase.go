package usecase

import (
	"context"
	"encoding/json"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/google/uuid"
)

// CreateNewsInput defines a new article.
type CreateNewsInput struct {
	Title       string
	Location    string
	Category    string
	Content     json.RawMessage
	IsPublished bool
	Thumbnail   *service.ImageUpload
}

// UpdateNewsInput is a partial update; nil fields are left untouched.
type UpdateNewsInput struct {
	Title     *string
	Location  *string
	Category  *string
	Content   json.RawMessage
	Thumbnail *service.ImageUpload
}

// NewsDetail is an article plus a few others of the same category.
type NewsDetail struct {
	News        *entity.News
	Suggestions []*entity.News
}

// NewsUsecase manages editorial content.
type NewsUsecase interface {
	Create(ctx context.Context, input *CreateNewsInput) (*entity.News, error)
	Update(ctx context.Context, newsID uuid.UUID, input *UpdateNewsInput) (*entity.News, error)
	UpdateStatus(ctx context.Context, newsID uuid.UUID, published bool) (*entity.News, error)
	Delete(ctx context.Context, newsID uuid.UUID) error
	List(ctx context.Context, filter entity.NewsFilter) (*entity.Page[*entity.News], error)

	// Get returns a published article; drafts are reported as not found.
	Get(ctx context.Context, newsID uuid.UUID) (*NewsDetail, error)

	Recent(ctx context.Context, limit int) ([]*entity.News, error)
}

// CreateContactInput is a message from the public contact form.
type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Country string
	Message string
}

// ContactUsecase is the contact form inbox.
type ContactUsecase interface {
	Create(ctx context.Context, input *CreateContactInput) (*entity.Contact, error)
	List(ctx context.Context, filter entity.ContactFilter) (*entity.Page[*entity.Contact], error)
	Get(ctx context.Context, contactID uuid.UUID) (*entity.Contact, error)
	UpdateReadStatus(ctx context.Context, contactID uuid.UUID, isRead bool) (*entity.Contact, error)
}
