package impl

import (
	"context"
	"testing"

	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service    usecase.ProfileUsecase
	txManager  *mockRepo.MockTransactionManager
	imageStore *mockSvc.MockImageStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	imageStore := mockSvc.NewMockImageStore(t)

	return profileServiceFixtures{
		service:    NewProfileService(txManager, imageStore, newDiscardLogger()),
		txManager:  txManager,
		imageStore: imageStore,
	}
}

// runInTx makes the mocked transaction manager call fn with a factory and return its error.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	otp := "digest"
	stored := &entity.Account{
		ID:           accountID,
		Email:        "test@example.com",
		PasswordHash: "hash",
		OTPHash:      &otp,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(stored, nil)
	runInTx(t, fx.txManager, factory)

	account, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", account.Email)
	assert.Empty(t, account.PasswordHash)
	assert.Nil(t, account.OTPHash)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, domainerrors.ErrAccountNotFound)
	runInTx(t, fx.txManager, factory)

	account, err := fx.service.GetProfile(ctx, accountID)

	assert.Nil(t, account)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestProfileService_UpdateProfile_ReplacesImage(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	name := "New Name"
	upload := service.ImageUpload{Filename: "me.png", ContentType: "image/png", Data: []byte{1}}
	existing := &entity.Account{ID: accountID, Name: "Old", ImageURL: "http://img/old", ImagePublicID: "users/old"}

	fx.imageStore.EXPECT().Upload(ctx, upload, constants.FolderUsers).
		Return(entity.Image{URL: "http://img/new", PublicID: "users/new"}, nil)
	fx.imageStore.EXPECT().Delete(ctx, "users/old").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil)
	accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	runInTx(t, fx.txManager, factory)

	account, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{Name: &name, Image: &upload})

	require.NoError(t, err)
	assert.Equal(t, "New Name", account.Name)
	assert.Equal(t, "http://img/new", account.ImageURL)
	assert.Equal(t, "users/new", account.ImagePublicID)
}

func TestProfileService_UpdateProfile_SellerFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	company := "Harbor Homes"
	tier := entity.SubscriptionPremium
	existing := &entity.Account{
		ID:   accountID,
		Role: entity.RoleSeller,
		SellerProfile: &entity.SellerProfile{
			ID:               uuid.New(),
			AccountID:        accountID,
			SubscriptionTier: entity.SubscriptionFree,
		},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	factory.EXPECT().SellerRepo().Return(sellerRepo)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil)
	accountRepo.EXPECT().Update(ctx, existing).Return(nil)
	sellerRepo.EXPECT().Update(ctx, existing.SellerProfile).Return(nil)
	runInTx(t, fx.txManager, factory)

	account, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{
		Seller: &usecase.UpdateSellerInput{CompanyName: &company, SubscriptionTier: &tier},
	})

	require.NoError(t, err)
	require.NotNil(t, account.SellerProfile)
	assert.Equal(t, "Harbor Homes", account.SellerProfile.CompanyName)
	assert.Equal(t, entity.SubscriptionPremium, account.SellerProfile.SubscriptionTier)
}

func TestProfileService_UpdateProfile_SellerFieldsWithoutProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	company := "Nope"

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(&entity.Account{ID: accountID, Role: entity.RoleUser}, nil)
	accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	runInTx(t, fx.txManager, factory)

	_, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{
		Seller: &usecase.UpdateSellerInput{CompanyName: &company},
	})

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestProfileService_UpdateProfile_FailureDiscardsNewImage(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.New()
	upload := service.ImageUpload{Filename: "me.png", ContentType: "image/png", Data: []byte{1}}

	fx.imageStore.EXPECT().Upload(ctx, upload, constants.FolderUsers).
		Return(entity.Image{URL: "http://img/new", PublicID: "users/new"}, nil)
	fx.imageStore.EXPECT().Delete(ctx, "users/new").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, domainerrors.ErrAccountNotFound)
	runInTx(t, fx.txManager, factory)

	_, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{Image: &upload})

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
