package repository

import (
	"context"
	"time"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// PropertyRepository persists listings and bookmarks.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBySeller removes every listing of a seller and returns what was removed.
	DeleteBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Property, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Property, error)
	Search(ctx context.Context, filter entity.PropertyFilter) (*entity.Page[*entity.Property], error)

	// Trending returns listings created after since, most viewed first.
	Trending(ctx context.Context, category string, since time.Time, limit int) ([]*entity.Property, error)

	// WithinBounds returns geolocated listings inside the rectangle spanned by southWest and northEast.
	WithinBounds(ctx context.Context, southWest, northEast entity.GeoPoint) ([]*entity.Property, error)

	// Save bookmarks a property; a duplicate yields domainerrors.ErrPropertyAlreadySaved.
	Save(ctx context.Context, saved *entity.SavedProperty) error
	Unsave(ctx context.Context, accountID, propertyID uuid.UUID) error
	ListSaved(ctx context.Context, accountID uuid.UUID) ([]*entity.Property, error)
}
