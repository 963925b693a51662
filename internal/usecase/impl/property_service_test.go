package impl

import (
	"context"
	"testing"
	"time"

	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type propertyServiceFixtures struct {
	service      usecase.PropertyUsecase
	propertyRepo *mockRepo.MockPropertyRepository
	sellerRepo   *mockRepo.MockSellerRepository
	imageStore   *mockSvc.MockImageStore
	qrService    *mockSvc.MockQRCodeService
	clock        *clockwork.FakeClock
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	fx := propertyServiceFixtures{
		propertyRepo: mockRepo.NewMockPropertyRepository(t),
		sellerRepo:   mockRepo.NewMockSellerRepository(t),
		imageStore:   mockSvc.NewMockImageStore(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
		clock:        clockwork.NewFakeClockAt(time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)),
	}
	fx.service = NewPropertyService(PropertyServiceParams{
		PropertyRepo: fx.propertyRepo,
		SellerRepo:   fx.sellerRepo,
		ImageStore:   fx.imageStore,
		QRService:    fx.qrService,
		Clock:        fx.clock,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestPropertyService_Create_Success(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	sellerID := uuid.New()
	upload := service.ImageUpload{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte{1}}

	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).
		Return(&entity.SellerProfile{ID: sellerID, AccountID: accountID, Status: entity.VerificationPending}, nil)
	fx.imageStore.EXPECT().Upload(ctx, upload, constants.FolderProperties).
		Return(entity.Image{URL: "http://img/front", PublicID: "properties/front"}, nil)
	fx.propertyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Property")).
		Run(func(_ context.Context, property *entity.Property) {
			property.ID = uuid.New()
		}).
		Return(nil)

	property, err := fx.service.Create(ctx, accountID, &usecase.CreatePropertyInput{
		Title:    "Sea view flat",
		Category: "apartment",
		Price:    250000,
		Location: &entity.GeoPoint{Latitude: 38.72, Longitude: -9.14},
		Images:   []service.ImageUpload{upload},
	})

	require.NoError(t, err)
	assert.Equal(t, sellerID, property.SellerID)
	assert.NotEqual(t, uuid.Nil, property.ID)
	require.Len(t, property.Images, 1)
	assert.Equal(t, "properties/front", property.Images[0].PublicID)
}

func TestPropertyService_Create_RejectedSeller(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).
		Return(&entity.SellerProfile{ID: uuid.New(), Status: entity.VerificationRejected}, nil)

	_, err := fx.service.Create(ctx, accountID, &usecase.CreatePropertyInput{Title: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrSellerRejected))
}

func TestPropertyService_Create_NotASeller(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, domainerrors.ErrSellerNotFound)

	_, err := fx.service.Create(ctx, accountID, &usecase.CreatePropertyInput{Title: "x"})

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestPropertyService_Create_UploadFailureRemovesEarlierImages(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	first := service.ImageUpload{Filename: "a.png", ContentType: "image/png", Data: []byte{1}}
	second := service.ImageUpload{Filename: "b.png", ContentType: "image/png", Data: []byte{2}}

	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).Return(&entity.SellerProfile{ID: uuid.New()}, nil)
	fx.imageStore.EXPECT().Upload(ctx, first, constants.FolderProperties).Return(entity.Image{PublicID: "properties/a"}, nil)
	fx.imageStore.EXPECT().Upload(ctx, second, constants.FolderProperties).
		Return(entity.Image{}, domainerrors.NewUpstreamError("image storage", errors.New("timeout")))
	fx.imageStore.EXPECT().Delete(ctx, "properties/a").Return(nil)

	_, err := fx.service.Create(ctx, accountID, &usecase.CreatePropertyInput{
		Title:  "x",
		Images: []service.ImageUpload{first, second},
	})

	assert.Equal(t, domainerrors.KindUpstreamFailure, domainerrors.KindOf(err))
}

func TestPropertyService_Create_InvalidLocation(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).Return(&entity.SellerProfile{ID: uuid.New()}, nil)

	_, err := fx.service.Create(ctx, accountID, &usecase.CreatePropertyInput{
		Title:    "x",
		Location: &entity.GeoPoint{Latitude: 91, Longitude: 0},
	})

	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
}

func TestPropertyService_Update_ForbiddenForOtherSeller(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	propertyID := uuid.New()
	title := "Stolen"

	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).Return(&entity.SellerProfile{ID: uuid.New()}, nil)
	fx.propertyRepo.EXPECT().FindByID(ctx, propertyID).Return(&entity.Property{ID: propertyID, SellerID: uuid.New()}, nil)

	_, err := fx.service.Update(ctx, accountID, propertyID, &usecase.UpdatePropertyInput{Title: &title})

	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}

func TestPropertyService_Update_SwapsImages(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	sellerID := uuid.New()
	propertyID := uuid.New()
	price := 199000.0
	upload := service.ImageUpload{Filename: "new.png", ContentType: "image/png", Data: []byte{1}}
	existing := &entity.Property{
		ID:       propertyID,
		SellerID: sellerID,
		Price:    210000,
		Images:   []entity.Image{{PublicID: "properties/keep"}, {PublicID: "properties/drop"}},
	}

	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).Return(&entity.SellerProfile{ID: sellerID}, nil)
	fx.propertyRepo.EXPECT().FindByID(ctx, propertyID).Return(existing, nil)
	fx.imageStore.EXPECT().Upload(ctx, upload, constants.FolderProperties).Return(entity.Image{PublicID: "properties/new"}, nil)
	fx.propertyRepo.EXPECT().Update(ctx, existing).Return(nil)
	fx.imageStore.EXPECT().Delete(ctx, "properties/drop").Return(nil)

	property, err := fx.service.Update(ctx, accountID, propertyID, &usecase.UpdatePropertyInput{
		Price:          &price,
		NewImages:      []service.ImageUpload{upload},
		RemoveImageIDs: []string{"properties/drop"},
	})

	require.NoError(t, err)
	assert.Equal(t, 199000.0, property.Price)
	assert.Equal(t, []entity.Image{{PublicID: "properties/keep"}, {PublicID: "properties/new"}}, property.Images)
}

func TestPropertyService_Delete_RemovesImages(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	sellerID := uuid.New()
	propertyID := uuid.New()

	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).Return(&entity.SellerProfile{ID: sellerID}, nil)
	fx.propertyRepo.EXPECT().FindByID(ctx, propertyID).
		Return(&entity.Property{ID: propertyID, SellerID: sellerID, Images: []entity.Image{{PublicID: "properties/a"}}}, nil)
	fx.propertyRepo.EXPECT().Delete(ctx, propertyID).Return(nil)
	fx.imageStore.EXPECT().Delete(ctx, "properties/a").Return(nil)

	require.NoError(t, fx.service.Delete(ctx, accountID, propertyID))
}

func TestPropertyService_Get_CountsView(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().IncrementViews(ctx, propertyID).Return(nil)
	fx.propertyRepo.EXPECT().FindByID(ctx, propertyID).Return(&entity.Property{ID: propertyID, Views: 8}, nil)

	property, err := fx.service.Get(ctx, propertyID)

	require.NoError(t, err)
	assert.Equal(t, int64(8), property.Views)
}

func TestPropertyService_Get_Missing(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	fx.propertyRepo.EXPECT().IncrementViews(ctx, propertyID).Return(domainerrors.ErrPropertyNotFound)

	_, err := fx.service.Get(ctx, propertyID)

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestPropertyService_Portfolio_SumsViews(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	sellerID := uuid.New()

	fx.sellerRepo.EXPECT().FindByAccountID(ctx, accountID).Return(&entity.SellerProfile{ID: sellerID}, nil)
	fx.propertyRepo.EXPECT().FindBySeller(ctx, sellerID).
		Return([]*entity.Property{{Views: 3}, {Views: 4}, {Views: 0}}, nil)

	portfolio, err := fx.service.Portfolio(ctx, accountID)

	require.NoError(t, err)
	assert.Len(t, portfolio.Properties, 3)
	assert.Equal(t, int64(7), portfolio.TotalViews)
}

func TestPropertyService_Search(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	minPrice, maxPrice := 100.0, 50.0

	_, err := fx.service.Search(ctx, entity.PropertyFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))

	expected := &entity.Page[*entity.Property]{Page: 1, Limit: 10}
	fx.propertyRepo.EXPECT().
		Search(ctx, entity.PropertyFilter{Search: "lisbon", Pagination: entity.Pagination{Page: 1, Limit: 10}}).
		Return(expected, nil)

	page, err := fx.service.Search(ctx, entity.PropertyFilter{Search: "  lisbon "})

	require.NoError(t, err)
	assert.Same(t, expected, page)
}

func TestPropertyService_Trending_UsesThirtyDayWindow(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	since := fx.clock.Now().Add(-30 * 24 * time.Hour)
	fx.propertyRepo.EXPECT().Trending(ctx, "villa", since, 10).Return([]*entity.Property{}, nil)

	_, err := fx.service.Trending(ctx, "villa", 0)

	require.NoError(t, err)
}

func TestPropertyService_Nearby_FiltersAndSortsByDistance(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	// Lisbon city centre
	origin := entity.GeoPoint{Latitude: 38.7223, Longitude: -9.1393}
	near := &entity.Property{ID: uuid.New(), Location: &entity.GeoPoint{Latitude: 38.7250, Longitude: -9.1500}}
	closest := &entity.Property{ID: uuid.New(), Location: &entity.GeoPoint{Latitude: 38.7224, Longitude: -9.1394}}
	// inside the bounding box corner but beyond the radius
	corner := &entity.Property{ID: uuid.New(), Location: &entity.GeoPoint{Latitude: 38.7583, Longitude: -9.0932}}
	unplaced := &entity.Property{ID: uuid.New()}

	fx.propertyRepo.EXPECT().WithinBounds(ctx, mock.AnythingOfType("entity.GeoPoint"), mock.AnythingOfType("entity.GeoPoint")).
		Run(func(_ context.Context, southWest, northEast entity.GeoPoint) {
			assert.Less(t, southWest.Latitude, origin.Latitude)
			assert.Less(t, southWest.Longitude, origin.Longitude)
			assert.Greater(t, northEast.Latitude, origin.Latitude)
			assert.Greater(t, northEast.Longitude, origin.Longitude)
		}).
		Return([]*entity.Property{near, corner, closest, unplaced}, nil)

	nearby, err := fx.service.Nearby(ctx, &usecase.NearbyInput{
		Latitude:  origin.Latitude,
		Longitude: origin.Longitude,
		RadiusKm:  5,
	})

	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, closest.ID, nearby[0].Property.ID)
	assert.Equal(t, near.ID, nearby[1].Property.ID)
	assert.Less(t, nearby[0].DistanceKm, 0.1)
	assert.InDelta(t, 1.0, nearby[1].DistanceKm, 0.3)
}

func TestPropertyService_Nearby_InvalidInput(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	tests := []*usecase.NearbyInput{
		{Latitude: 120, Longitude: 0, RadiusKm: 1},
		{Latitude: 0, Longitude: 0, RadiusKm: 0},
		{Latitude: 0, Longitude: 0, RadiusKm: 500},
	}

	for _, input := range tests {
		_, err := fx.service.Nearby(ctx, input)
		assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
	}
}

func TestPropertyService_Save(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().FindByID(ctx, propertyID).Return(&entity.Property{ID: propertyID}, nil)
	fx.propertyRepo.EXPECT().Save(ctx, &entity.SavedProperty{AccountID: accountID, PropertyID: propertyID, CreatedAt: fx.clock.Now()}).
		Return(domainerrors.ErrPropertyAlreadySaved)

	err := fx.service.Save(ctx, accountID, propertyID)

	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestPropertyService_Unsave_Missing(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	accountID := uuid.New()
	propertyID := uuid.New()
	fx.propertyRepo.EXPECT().Unsave(ctx, accountID, propertyID).Return(domainerrors.ErrSavedPropertyMissing)

	err := fx.service.Unsave(ctx, accountID, propertyID)

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestPropertyService_ShareQR(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	fx.propertyRepo.EXPECT().FindByID(ctx, propertyID).Return(&entity.Property{ID: propertyID}, nil)
	fx.qrService.EXPECT().GeneratePropertyQR(propertyID).Return([]byte("png"), nil)

	png, err := fx.service.ShareQR(ctx, propertyID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
