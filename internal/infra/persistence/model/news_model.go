package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NewsModel mirrors the 'news' table.
type NewsModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title             string         `gorm:"type:varchar(255);not null"`
	ThumbnailURL      string         `gorm:"column:thumbnail_url;type:text"`
	ThumbnailPublicID string         `gorm:"column:thumbnail_public_id;type:varchar(255)"`
	Location          string         `gorm:"type:varchar(255)"`
	Category          string         `gorm:"type:varchar(50);not null;index"`
	Content           datatypes.JSON `gorm:"type:jsonb"`
	IsPublished       bool           `gorm:"not null;default:false;index"`
	FirstPublishedAt  *time.Time
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsModel) TableName() string {
	return "news"
}

// ContactModel mirrors the 'contacts' table.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	Country   string    `gorm:"type:varchar(100)"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&AccountModel{},
		&SellerProfileModel{},
		&PropertyModel{},
		&SavedPropertyModel{},
		&NewsModel{},
		&ContactModel{},
	}
}
