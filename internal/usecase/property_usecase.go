package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/google/uuid"
)

// CreatePropertyInput defines a new listing.
type CreatePropertyInput struct {
	Title       string
	Category    string
	Description string
	Price       float64
	Features    []string
	Address     string
	Country     string
	State       string
	City        string
	Zip         string
	Location    *entity.GeoPoint
	Images      []service.ImageUpload
}

// UpdatePropertyInput is a partial update; nil fields are left untouched.
type UpdatePropertyInput struct {
	Title          *string
	Category       *string
	Description    *string
	Price          *float64
	Features       []string
	Address        *string
	Country        *string
	State          *string
	City           *string
	Zip            *string
	Location       *entity.GeoPoint
	NewImages      []service.ImageUpload
	RemoveImageIDs []string
}

// NearbyInput is a radius query around a point.
type NearbyInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// PortfolioOutput is a seller's own listings with their accumulated views.
type PortfolioOutput struct {
	Properties []*entity.Property
	TotalViews int64
}

// PropertyUsecase covers listings, discovery and bookmarks.
type PropertyUsecase interface {
	Create(ctx context.Context, accountID uuid.UUID, input *CreatePropertyInput) (*entity.Property, error)
	Update(ctx context.Context, accountID, propertyID uuid.UUID, input *UpdatePropertyInput) (*entity.Property, error)
	Delete(ctx context.Context, accountID, propertyID uuid.UUID) error

	// Get counts a view and returns the listing.
	Get(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error)

	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Property, error)
	Portfolio(ctx context.Context, accountID uuid.UUID) (*PortfolioOutput, error)
	Search(ctx context.Context, filter entity.PropertyFilter) (*entity.Page[*entity.Property], error)
	Trending(ctx context.Context, category string, limit int) ([]*entity.Property, error)
	Nearby(ctx context.Context, input *NearbyInput) ([]*entity.NearbyProperty, error)

	Save(ctx context.Context, accountID, propertyID uuid.UUID) error
	Unsave(ctx context.Context, accountID, propertyID uuid.UUID) error
	ListSaved(ctx context.Context, accountID uuid.UUID) ([]*entity.Property, error)

	// ShareQR renders a PNG QR code linking to the public listing page.
	ShareQR(ctx context.Context, propertyID uuid.UUID) ([]byte, error)
}
