package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

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
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const (
	trendingWindow     = 30 * 24 * time.Hour
	defaultTrending    = 10
	defaultNearbyLimit = 20
	maxNearbyRadiusKm  = 200
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	sellerRepo   repository.SellerRepository
	imageStore   service.ImageStore
	qrService    service.QRCodeService
	clock        clockwork.Clock
	logger       *slog.Logger
}

// PropertyServiceParams holds dependencies for PropertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	SellerRepo   repository.SellerRepository
	ImageStore   service.ImageStore
	QRService    service.QRCodeService
	Clock        clockwork.Clock
	Logger       *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: params.PropertyRepo,
		sellerRepo:   params.SellerRepo,
		imageStore:   params.ImageStore,
		qrService:    params.QRService,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *propertyService) Create(ctx context.Context, accountID uuid.UUID, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	seller, err := srv.sellerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller profile")
	}
	if seller.Status == entity.VerificationRejected {
		return nil, domainerrors.ErrSellerRejected
	}
	if err := validateLocation(input.Location); err != nil {
		return nil, err
	}

	images, err := srv.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	property := &entity.Property{
		SellerID:    seller.ID,
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Features:    input.Features,
		Address:     input.Address,
		Country:     input.Country,
		State:       input.State,
		City:        input.City,
		Zip:         input.Zip,
		Location:    input.Location,
		Images:      images,
	}

	if err := srv.propertyRepo.Create(ctx, property); err != nil {
		srv.deleteImages(ctx, images)

		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.log(ctx).Info("Property created", slog.Any("propertyID", property.ID), slog.Any("sellerID", seller.ID))

	return property, nil
}

func (srv *propertyService) Update(ctx context.Context, accountID, propertyID uuid.UUID, input *usecase.UpdatePropertyInput) (*entity.Property, error) {
	property, err := srv.ownedProperty(ctx, accountID, propertyID)
	if err != nil {
		return nil, err
	}
	if err := validateLocation(input.Location); err != nil {
		return nil, err
	}

	added, err := srv.uploadImages(ctx, input.NewImages)
	if err != nil {
		return nil, err
	}

	applyPropertyChanges(property, input)
	var removed []entity.Image
	if len(input.RemoveImageIDs) > 0 {
		kept := property.Images[:0:0]
		for _, image := range property.Images {
			if slices.Contains(input.RemoveImageIDs, image.PublicID) {
				removed = append(removed, image)

				continue
			}
			kept = append(kept, image)
		}
		property.Images = kept
	}
	property.Images = append(property.Images, added...)

	if err := srv.propertyRepo.Update(ctx, property); err != nil {
		srv.deleteImages(ctx, added)

		return nil, errors.Wrap(err, "failed to update property")
	}

	srv.deleteImages(ctx, removed)

	return property, nil
}

func (srv *propertyService) Delete(ctx context.Context, accountID, propertyID uuid.UUID) error {
	property, err := srv.ownedProperty(ctx, accountID, propertyID)
	if err != nil {
		return err
	}

	if err := srv.propertyRepo.Delete(ctx, propertyID); err != nil {
		return errors.Wrap(err, "failed to delete property")
	}

	srv.deleteImages(ctx, property.Images)
	srv.log(ctx).Info("Property deleted", slog.Any("propertyID", propertyID))

	return nil
}

// ownedProperty loads a listing and checks it belongs to the seller profile of accountID.
func (srv *propertyService) ownedProperty(ctx context.Context, accountID, propertyID uuid.UUID) (*entity.Property, error) {
	seller, err := srv.sellerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller profile")
	}

	property, err := srv.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find property")
	}

	if property.SellerID != seller.ID {
		srv.log(ctx).Warn("Property access denied", slog.Any("propertyID", propertyID), slog.Any("accountID", accountID))

		return nil, domainerrors.ErrForbidden.WithDetails("property belongs to another seller")
	}

	return property, nil
}

func (srv *propertyService) Get(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	if err := srv.propertyRepo.IncrementViews(ctx, propertyID); err != nil {
		return nil, errors.Wrap(err, "failed to count property view")
	}

	property, err := srv.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

func (srv *propertyService) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Property, error) {
	if _, err := srv.sellerRepo.FindByID(ctx, sellerID); err != nil {
		return nil, errors.Wrap(err, "failed to find seller")
	}

	properties, err := srv.propertyRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller properties")
	}

	return properties, nil
}

func (srv *propertyService) Portfolio(ctx context.Context, accountID uuid.UUID) (*usecase.PortfolioOutput, error) {
	seller, err := srv.sellerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller profile")
	}

	properties, err := srv.propertyRepo.FindBySeller(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller properties")
	}

	output := &usecase.PortfolioOutput{Properties: properties}
	for _, property := range properties {
		output.TotalViews += property.Views
	}

	return output, nil
}

func (srv *propertyService) Search(ctx context.Context, filter entity.PropertyFilter) (*entity.Page[*entity.Property], error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, domainerrors.ErrValidationFailed.WithDetails("minPrice must not exceed maxPrice")
	}

	filter.Search = strings.TrimSpace(filter.Search)
	filter.Pagination = normalizePagination(filter.Pagination)

	page, err := srv.propertyRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	return page, nil
}

func (srv *propertyService) Trending(ctx context.Context, category string, limit int) ([]*entity.Property, error) {
	if limit < 1 {
		limit = defaultTrending
	}
	limit = min(limit, constants.MaxLimit)

	properties, err := srv.propertyRepo.Trending(ctx, category, srv.clock.Now().Add(-trendingWindow), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trending properties")
	}

	return properties, nil
}

// Nearby prefilters with a bounding box in the store and ranks by great-circle distance here.
func (srv *propertyService) Nearby(ctx context.Context, input *usecase.NearbyInput) ([]*entity.NearbyProperty, error) {
	center := &entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := validateLocation(center); err != nil {
		return nil, err
	}
	if input.RadiusKm <= 0 || input.RadiusKm > maxNearbyRadiusKm {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radiusKm must be within (0, 200]")
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultNearbyLimit
	}
	limit = min(limit, constants.MaxLimit)

	origin := orb.Point{input.Longitude, input.Latitude}
	radiusMeters := input.RadiusKm * 1000
	bound := geo.NewBoundAroundPoint(origin, radiusMeters)

	candidates, err := srv.propertyRepo.WithinBounds(ctx,
		entity.GeoPoint{Latitude: bound.Min.Lat(), Longitude: bound.Min.Lon()},
		entity.GeoPoint{Latitude: bound.Max.Lat(), Longitude: bound.Max.Lon()},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby properties")
	}

	nearby := make([]*entity.NearbyProperty, 0, len(candidates))
	for _, property := range candidates {
		if property.Location == nil {
			continue
		}
		meters := geo.DistanceHaversine(origin, orb.Point{property.Location.Longitude, property.Location.Latitude})
		if meters > radiusMeters {
			continue
		}
		nearby = append(nearby, &entity.NearbyProperty{Property: property, DistanceKm: meters / 1000})
	}

	slices.SortStableFunc(nearby, func(a, b *entity.NearbyProperty) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

func (srv *propertyService) Save(ctx context.Context, accountID, propertyID uuid.UUID) error {
	if _, err := srv.propertyRepo.FindByID(ctx, propertyID); err != nil {
		return errors.Wrap(err, "failed to find property")
	}

	saved := &entity.SavedProperty{AccountID: accountID, PropertyID: propertyID, CreatedAt: srv.clock.Now()}
	if err := srv.propertyRepo.Save(ctx, saved); err != nil {
		return errors.Wrap(err, "failed to save property")
	}

	return nil
}

func (srv *propertyService) Unsave(ctx context.Context, accountID, propertyID uuid.UUID) error {
	return errors.Wrap(srv.propertyRepo.Unsave(ctx, accountID, propertyID), "failed to unsave property")
}

func (srv *propertyService) ListSaved(ctx context.Context, accountID uuid.UUID) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.ListSaved(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved properties")
	}

	return properties, nil
}

func (srv *propertyService) ShareQR(ctx context.Context, propertyID uuid.UUID) ([]byte, error) {
	if _, err := srv.propertyRepo.FindByID(ctx, propertyID); err != nil {
		return nil, errors.Wrap(err, "failed to find property")
	}

	png, err := srv.qrService.GeneratePropertyQR(propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate property QR code")
	}

	return png, nil
}

// uploadImages stores every image or none: a failure removes what was already uploaded.
func (srv *propertyService) uploadImages(ctx context.Context, uploads []service.ImageUpload) ([]entity.Image, error) {
	images := make([]entity.Image, 0, len(uploads))
	for _, upload := range uploads {
		image, err := srv.imageStore.Upload(ctx, upload, constants.FolderProperties)
		if err != nil {
			srv.deleteImages(ctx, images)

			return nil, errors.Wrap(err, "failed to upload property image")
		}
		images = append(images, image)
	}

	return images, nil
}

func (srv *propertyService) deleteImages(ctx context.Context, images []entity.Image) {
	for _, image := range images {
		if err := srv.imageStore.Delete(ctx, image.PublicID); err != nil {
			srv.log(ctx).Warn("Failed to delete property image", slog.String("publicID", image.PublicID), slog.Any("error", err))
		}
	}
}

func applyPropertyChanges(property *entity.Property, input *usecase.UpdatePropertyInput) {
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&property.Title, input.Title)
	assign(&property.Category, input.Category)
	assign(&property.Description, input.Description)
	assign(&property.Address, input.Address)
	assign(&property.Country, input.Country)
	assign(&property.State, input.State)
	assign(&property.City, input.City)
	assign(&property.Zip, input.Zip)

	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Features != nil {
		property.Features = input.Features
	}
	if input.Location != nil {
		property.Location = input.Location
	}
}

func validateLocation(point *entity.GeoPoint) error {
	if point == nil {
		return nil
	}
	if math.IsNaN(point.Latitude) || math.IsNaN(point.Longitude) ||
		point.Latitude < -90 || point.Latitude > 90 ||
		point.Longitude < -180 || point.Longitude > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return nil
}
