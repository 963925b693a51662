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
	"gorm.io/plugin/dbresolver"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID reads from the primary so a just-written account is always visible.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("SellerProfile").
		Where(query, arg).
		First(&m).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return toAccountDomain(&m), nil
}

// Create inserts the account row only. Seller profiles go through SellerRepository.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = newID()
	}
	m := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit("SellerProfile").Create(m).Error; err != nil {
		return mapAccountWriteError(err, "failed to create account")
	}

	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	m := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{ID: account.ID}).
		Select("email", "password_hash", "name", "image_url", "image_public_id", "language",
			"role", "is_email_verified", "otp_hash", "otp_expires_at", "updated_at").
		Updates(m)
	if result.Error != nil {
		return mapAccountWriteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	account.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) List(ctx context.Context, filter entity.AccountFilter) (*entity.Page[*entity.Account], error) {
	query := repo.db.WithContext(ctx).Model(&model.AccountModel{})
	if filter.Role != "" {
		query = query.Where("role = ?", string(filter.Role))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count accounts")
	}

	var models []model.AccountModel
	if err := query.Preload("SellerProfile").
		Order("created_at DESC").
		Scopes(paginate(filter.Pagination)).
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	return &entity.Page[*entity.Account]{
		Items: mapSlice(models, toAccountDomain),
		Total: total,
		Page:  filter.Pagination.Page,
		Limit: filter.Pagination.Limit,
	}, nil
}

func mapAccountWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
