package postgres

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

func (repo *sellerRepository) Create(ctx context.Context, profile *entity.SellerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = newID()
	}
	m := fromSellerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapSellerWriteError(err, "failed to create seller profile")
	}

	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *sellerRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.SellerProfile, error) {
	return repo.findOne(ctx, "account_id = ?", accountID)
}

func (repo *sellerRepository) findOne(ctx context.Context, query string, arg any) (*entity.SellerProfile, error) {
	var m model.SellerProfileModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find seller profile")
	}

	return toSellerProfileDomain(&m), nil
}

// sellerEditableColumns are written by profile edits. Status has a single writer, UpdateStatus,
// so an edit based on a stale read cannot undo an admin decision.
var sellerEditableColumns = []string{
	"company_name", "company_website", "phone", "address", "country", "state", "city", "zip",
	"subscription_tier", "document", "updated_at",
}

func (repo *sellerRepository) Update(ctx context.Context, profile *entity.SellerProfile) error {
	m := fromSellerProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.SellerProfileModel{ID: profile.ID}).
		Select(sellerEditableColumns).
		Updates(m)
	if result.Error != nil {
		return mapSellerWriteError(result.Error, "failed to update seller profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSellerNotFound
	}

	profile.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *sellerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerProfileModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSellerNotFound
	}

	return nil
}

func (repo *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SellerProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete seller profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSellerNotFound
	}

	return nil
}

func (repo *sellerRepository) List(ctx context.Context, filter entity.SellerFilter) (*entity.Page[*entity.SellerProfile], error) {
	query := repo.db.WithContext(ctx).Model(&model.SellerProfileModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count seller profiles")
	}

	var models []model.SellerProfileModel
	if err := query.Order("created_at DESC").Scopes(paginate(filter.Pagination)).Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list seller profiles")
	}

	return &entity.Page[*entity.SellerProfile]{
		Items: mapSlice(models, toSellerProfileDomain),
		Total: total,
		Page:  filter.Pagination.Page,
		Limit: filter.Pagination.Limit,
	}, nil
}

func mapSellerWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrAccountAlreadyExists.WrapMessage("seller profile already exists for this account")
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrAccountNotFound, details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
