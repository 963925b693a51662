package postgres

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = newID()
	}
	m := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.CreatedAt = m.CreatedAt

	return nil
}

func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var m model.ContactModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find contact")
	}

	return toContactDomain(&m), nil
}

func (repo *contactRepository) List(ctx context.Context, filter entity.ContactFilter) (*entity.Page[*entity.Contact], error) {
	query := repo.db.WithContext(ctx).Model(&model.ContactModel{})
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count contacts")
	}

	var models []model.ContactModel
	if err := query.Order("created_at DESC").Scopes(paginate(filter.Pagination)).Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contacts")
	}

	return &entity.Page[*entity.Contact]{
		Items: mapSlice(models, toContactDomain),
		Total: total,
		Page:  filter.Pagination.Page,
		Limit: filter.Pagination.Limit,
	}, nil
}

func (repo *contactRepository) UpdateReadStatus(ctx context.Context, id uuid.UUID, isRead bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", id).
		Update("is_read", isRead)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrContactNotFound
	}

	return nil
}
