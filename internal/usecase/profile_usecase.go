package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/google/uuid"
)

// UpdateProfileInput is a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	Name     *string
	Language *string
	Image    *service.ImageUpload
	Seller   *UpdateSellerInput
}

// UpdateSellerInput is a partial update of the seller profile.
type UpdateSellerInput struct {
	CompanyName      *string
	CompanyWebsite   *string
	Phone            *string
	Address          *string
	Country          *string
	State            *string
	City             *string
	Zip              *string
	SubscriptionTier *entity.SubscriptionTier
	Document         *string
}

// ProfileUsecase lets an authenticated account read and edit itself.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)
}

// AdminUsecase is the back-office review of accounts and sellers.
type AdminUsecase interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	ListSellers(ctx context.Context, filter entity.SellerFilter) (*entity.Page[*entity.SellerProfile], error)
	GetSeller(ctx context.Context, sellerID uuid.UUID) (*entity.SellerProfile, error)
	UpdateSellerStatus(ctx context.Context, sellerID uuid.UUID, status entity.VerificationStatus) (*entity.SellerProfile, error)

	// DeleteSeller removes the profile and its listings and downgrades the account to a plain user.
	DeleteSeller(ctx context.Context, sellerID uuid.UUID) error
}
