package postgres

import (
	"estate/internal/errors"
	"estate/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table owned by the service.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
