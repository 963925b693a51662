package impl

import (
	"context"
	"testing"

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

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	sellerRepo  *mockRepo.MockSellerRepository
	imageStore  *mockSvc.MockImageStore
	publisher   *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		sellerRepo:  mockRepo.NewMockSellerRepository(t),
		imageStore:  mockSvc.NewMockImageStore(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		TxManager:   fx.txManager,
		AccountRepo: fx.accountRepo,
		SellerRepo:  fx.sellerRepo,
		ImageStore:  fx.imageStore,
		Publisher:   fx.publisher,
		Clock:       clockwork.NewFakeClock(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestAdminService_GetAccount_Sanitized(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	accountID := uuid.New()
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(&entity.Account{ID: accountID, PasswordHash: "hash"}, nil)

	account, err := fx.service.GetAccount(ctx, accountID)

	require.NoError(t, err)
	assert.Empty(t, account.PasswordHash)
}

func TestAdminService_ListSellers_NormalizesPagination(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	expected := &entity.Page[*entity.SellerProfile]{Page: 1, Limit: 100}
	fx.sellerRepo.EXPECT().
		List(ctx, entity.SellerFilter{Status: entity.VerificationPending, Pagination: entity.Pagination{Page: 1, Limit: 100}}).
		Return(expected, nil)

	page, err := fx.service.ListSellers(ctx, entity.SellerFilter{
		Status:     entity.VerificationPending,
		Pagination: entity.Pagination{Page: 0, Limit: 5000},
	})

	require.NoError(t, err)
	assert.Same(t, expected, page)
}

func TestAdminService_ListSellers_UnknownStatus(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.ListSellers(context.Background(), entity.SellerFilter{Status: "ARCHIVED"})

	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
}

func TestAdminService_UpdateSellerStatus_PublishesEvent(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	accountID := uuid.New()

	fx.sellerRepo.EXPECT().UpdateStatus(ctx, sellerID, entity.VerificationVerified).Return(nil)
	fx.sellerRepo.EXPECT().FindByID(ctx, sellerID).
		Return(&entity.SellerProfile{ID: sellerID, AccountID: accountID, Status: entity.VerificationVerified}, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, entity.EventSellerStatusChanged, event.Type)
			assert.Equal(t, accountID.String(), event.Subject)
			assert.Equal(t, "VERIFIED", event.Attributes["status"])
		}).
		Return(nil)

	profile, err := fx.service.UpdateSellerStatus(ctx, sellerID, entity.VerificationVerified)

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationVerified, profile.Status)
}

func TestAdminService_UpdateSellerStatus_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.sellerRepo.EXPECT().UpdateStatus(ctx, sellerID, entity.VerificationRejected).Return(nil)
	fx.sellerRepo.EXPECT().FindByID(ctx, sellerID).
		Return(&entity.SellerProfile{ID: sellerID, Status: entity.VerificationRejected}, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.UpdateSellerStatus(ctx, sellerID, entity.VerificationRejected)

	assert.NoError(t, err)
}

func TestAdminService_UpdateSellerStatus_InvalidStatus(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.UpdateSellerStatus(context.Background(), uuid.New(), "maybe")

	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
}

func TestAdminService_DeleteSeller_CascadesAndDowngrades(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Role: entity.RoleSeller}
	removed := []*entity.Property{
		{ID: uuid.New(), Images: []entity.Image{{PublicID: "properties/a"}, {PublicID: "properties/b"}}},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory.EXPECT().SellerRepo().Return(sellerRepo)
	factory.EXPECT().PropertyRepo().Return(propertyRepo)
	factory.EXPECT().AccountRepo().Return(accountRepo)

	sellerRepo.EXPECT().FindByID(ctx, sellerID).Return(&entity.SellerProfile{ID: sellerID, AccountID: accountID}, nil)
	propertyRepo.EXPECT().DeleteBySeller(ctx, sellerID).Return(removed, nil)
	sellerRepo.EXPECT().Delete(ctx, sellerID).Return(nil)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	accountRepo.EXPECT().Update(ctx, account).Return(nil)
	runInTx(t, fx.txManager, factory)

	fx.imageStore.EXPECT().Delete(ctx, "properties/a").Return(nil)
	fx.imageStore.EXPECT().Delete(ctx, "properties/b").Return(errors.New("bucket offline"))

	err := fx.service.DeleteSeller(ctx, sellerID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, account.Role)
}

func TestAdminService_DeleteSeller_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	factory.EXPECT().SellerRepo().Return(sellerRepo)
	sellerRepo.EXPECT().FindByID(ctx, sellerID).Return(nil, domainerrors.ErrSellerNotFound)
	runInTx(t, fx.txManager, factory)

	err := fx.service.DeleteSeller(ctx, sellerID)

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
