package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerRepository persists seller profiles. Missing rows yield domainerrors.ErrSellerNotFound.
type SellerRepository interface {
	Create(ctx context.Context, profile *entity.SellerProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.SellerProfile, error)
	Update(ctx context.Context, profile *entity.SellerProfile) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entity.SellerFilter) (*entity.Page[*entity.SellerProfile], error)
}
