package impl

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
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

type adminService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	sellerRepo  repository.SellerRepository
	imageStore  service.ImageStore
	events      *eventEmitter
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	SellerRepo  repository.SellerRepository
	ImageStore  service.ImageStore
	Publisher   service.EventPublisher
	Clock       clockwork.Clock
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		sellerRepo:  params.SellerRepo,
		imageStore:  params.ImageStore,
		events:      &eventEmitter{publisher: params.Publisher, clock: params.Clock, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account.Sanitized(), nil
}

func (srv *adminService) ListSellers(ctx context.Context, filter entity.SellerFilter) (*entity.Page[*entity.SellerProfile], error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown verification status: " + string(filter.Status))
	}

	page, err := srv.sellerRepo.List(ctx, entity.SellerFilter{Status: filter.Status, Pagination: normalizePagination(filter.Pagination)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return page, nil
}

func (srv *adminService) GetSeller(ctx context.Context, sellerID uuid.UUID) (*entity.SellerProfile, error) {
	profile, err := srv.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller")
	}

	return profile, nil
}

func (srv *adminService) UpdateSellerStatus(ctx context.Context, sellerID uuid.UUID, status entity.VerificationStatus) (*entity.SellerProfile, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown verification status: " + string(status))
	}

	if err := srv.sellerRepo.UpdateStatus(ctx, sellerID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update seller status")
	}

	profile, err := srv.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload seller")
	}

	srv.log(ctx).Info("Seller status changed", slog.Any("sellerID", sellerID), slog.String("status", string(status)))
	srv.events.emit(ctx, entity.EventSellerStatusChanged, profile.AccountID.String(), map[string]string{
		"seller_id": sellerID.String(),
		"status":    string(status),
	})

	return profile, nil
}

// DeleteSeller unwinds a seller in one transaction; stored images are removed after commit.
func (srv *adminService) DeleteSeller(ctx context.Context, sellerID uuid.UUID) error {
	var removed []*entity.Property
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.SellerRepo().FindByID(ctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to find seller")
		}

		removed, err = repoFactory.PropertyRepo().DeleteBySeller(ctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to delete seller properties")
		}

		if err := repoFactory.SellerRepo().Delete(ctx, sellerID); err != nil {
			return errors.Wrap(err, "failed to delete seller profile")
		}

		account, err := repoFactory.AccountRepo().FindByID(ctx, profile.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to find seller account")
		}
		if account.Role == entity.RoleSeller {
			account.Role = entity.RoleUser
		}

		return errors.Wrap(repoFactory.AccountRepo().Update(ctx, account), "failed to downgrade seller account")
	})
	if err != nil {
		return err
	}

	for _, property := range removed {
		for _, image := range property.Images {
			if err := srv.imageStore.Delete(ctx, image.PublicID); err != nil {
				srv.log(ctx).Warn("Failed to delete property image", slog.String("publicID", image.PublicID), slog.Any("error", err))
			}
		}
	}

	srv.log(ctx).Info("Seller deleted", slog.Any("sellerID", sellerID), slog.Int("properties", len(removed)))

	return nil
}
