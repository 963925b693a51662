package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactRepository persists contact form messages.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	List(ctx context.Context, filter entity.ContactFilter) (*entity.Page[*entity.Contact], error)
	UpdateReadStatus(ctx context.Context, id uuid.UUID, isRead bool) error
}
