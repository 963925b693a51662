package postgres

import (
	"context"
	"strings"
	"time"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == uuid.Nil {
		property.ID = newID()
	}
	m := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Omit("Seller").Create(m).Error; err != nil {
		return mapPropertyWriteError(err, "failed to create property")
	}

	property.CreatedAt = m.CreatedAt
	property.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var m model.PropertyModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find property")
	}

	return toPropertyDomain(&m), nil
}

func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	m := fromPropertyDomain(property)

	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{ID: property.ID}).
		Select("title", "category", "description", "price", "features", "address", "country",
			"state", "city", "zip", "latitude", "longitude", "images", "updated_at").
		Updates(m)
	if result.Error != nil {
		return mapPropertyWriteError(result.Error, "failed to update property")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPropertyNotFound
	}

	property.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPropertyNotFound
	}

	return nil
}

func (repo *propertyRepository) DeleteBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Property, error) {
	var models []model.PropertyModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("seller_id = ?", sellerID).
		Delete(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete seller properties")
	}

	return mapSlice(models, toPropertyDomain), nil
}

func (repo *propertyRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment property views")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPropertyNotFound
	}

	return nil
}

func (repo *propertyRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Property, error) {
	var models []model.PropertyModel
	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list seller properties")
	}

	return mapSlice(models, toPropertyDomain), nil
}

func (repo *propertyRepository) Search(ctx context.Context, filter entity.PropertyFilter) (*entity.Page[*entity.Property], error) {
	query := repo.db.WithContext(ctx).Model(&model.PropertyModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + escapeLike(term) + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR city ILIKE ? OR address ILIKE ?", like, like, like, like)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count properties")
	}

	var models []model.PropertyModel
	if err := query.Order("created_at DESC").Scopes(paginate(filter.Pagination)).Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search properties")
	}

	return &entity.Page[*entity.Property]{
		Items: mapSlice(models, toPropertyDomain),
		Total: total,
		Page:  filter.Pagination.Page,
		Limit: filter.Pagination.Limit,
	}, nil
}

func (repo *propertyRepository) Trending(ctx context.Context, category string, since time.Time, limit int) ([]*entity.Property, error) {
	query := repo.db.WithContext(ctx).Where("created_at >= ?", since)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.PropertyModel
	if err := query.Order("views DESC").Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list trending properties")
	}

	return mapSlice(models, toPropertyDomain), nil
}

func (repo *propertyRepository) WithinBounds(ctx context.Context, southWest, northEast entity.GeoPoint) ([]*entity.Property, error) {
	var models []model.PropertyModel
	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", southWest.Latitude, northEast.Latitude).
		Where("longitude BETWEEN ? AND ?", southWest.Longitude, northEast.Longitude).
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list properties in bounds")
	}

	return mapSlice(models, toPropertyDomain), nil
}

func (repo *propertyRepository) Save(ctx context.Context, saved *entity.SavedProperty) error {
	m := &model.SavedPropertyModel{
		AccountID:  saved.AccountID,
		PropertyID: saved.PropertyID,
		CreatedAt:  saved.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Omit("Account", "Property").Create(m).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrPropertyAlreadySaved
		case isForeignKeyConstraintViolation(err):
			return errors.Wrap(domainerrors.ErrPropertyNotFound, "failed to save property")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to save property")
		}
	}

	saved.CreatedAt = m.CreatedAt

	return nil
}

func (repo *propertyRepository) Unsave(ctx context.Context, accountID, propertyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND property_id = ?", accountID, propertyID).
		Delete(&model.SavedPropertyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to unsave property")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSavedPropertyMissing
	}

	return nil
}

func (repo *propertyRepository) ListSaved(ctx context.Context, accountID uuid.UUID) ([]*entity.Property, error) {
	var saved []model.SavedPropertyModel
	if err := repo.db.WithContext(ctx).
		Preload("Property").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&saved).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list saved properties")
	}

	properties := make([]*entity.Property, 0, len(saved))
	for i := range saved {
		if saved[i].Property != nil {
			properties = append(properties, toPropertyDomain(saved[i].Property))
		}
	}

	return properties, nil
}

func mapPropertyWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrSellerNotFound, details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
