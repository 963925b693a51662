package impl

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
)

type profileService struct {
	txManager  repository.TransactionManager
	imageStore service.ImageStore
	logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(txManager repository.TransactionManager, imageStore service.ImageStore, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		txManager:  txManager,
		imageStore: imageStore,
		logger:     logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account.Sanitized(), nil
}

// UpdateProfile saves the new image first and deletes the previous one only after the update committed.
func (srv *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	var newImage *entity.Image
	if input.Image != nil {
		image, err := srv.imageStore.Upload(ctx, *input.Image, constants.FolderUsers)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload profile image")
		}
		newImage = &image
	}

	var account *entity.Account
	var previousImageID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		account, err = repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		applyAccountChanges(account, input)
		if newImage != nil {
			previousImageID = account.ImagePublicID
			account.ImageURL = newImage.URL
			account.ImagePublicID = newImage.PublicID
		}

		if err := repoFactory.AccountRepo().Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		if input.Seller == nil {
			return nil
		}
		if account.SellerProfile == nil {
			return errors.Wrap(domainerrors.ErrSellerNotFound, "account has no seller profile")
		}
		if err := applySellerChanges(account.SellerProfile, input.Seller); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.SellerRepo().Update(ctx, account.SellerProfile), "failed to update seller profile")
	})
	if err != nil {
		if newImage != nil {
			srv.deleteImage(ctx, newImage.PublicID)
		}

		return nil, err
	}

	srv.deleteImage(ctx, previousImageID)

	return account.Sanitized(), nil
}

func (srv *profileService) deleteImage(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := srv.imageStore.Delete(ctx, publicID); err != nil {
		srv.log(ctx).Warn("Failed to delete image", slog.String("publicID", publicID), slog.Any("error", err))
	}
}

func applyAccountChanges(account *entity.Account, input *usecase.UpdateProfileInput) {
	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Language != nil {
		account.Language = *input.Language
	}
}

func applySellerChanges(profile *entity.SellerProfile, input *usecase.UpdateSellerInput) error {
	if input.SubscriptionTier != nil {
		if !input.SubscriptionTier.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown subscription tier: " + string(*input.SubscriptionTier))
		}
		profile.SubscriptionTier = *input.SubscriptionTier
	}

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&profile.CompanyName, input.CompanyName)
	assign(&profile.CompanyWebsite, input.CompanyWebsite)
	assign(&profile.Phone, input.Phone)
	assign(&profile.Address, input.Address)
	assign(&profile.Country, input.Country)
	assign(&profile.State, input.State)
	assign(&profile.City, input.City)
	assign(&profile.Zip, input.Zip)
	assign(&profile.Document, input.Document)

	return nil
}
