package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImageRef is the JSON shape of a stored image inside a JSON column.
type ImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// PropertyModel mirrors the 'properties' table. SellerID references seller_profiles.id.
type PropertyModel struct {
	ID          uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	SellerID    uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Title       string                        `gorm:"type:varchar(255);not null"`
	Category    string                        `gorm:"type:varchar(50);not null;index"`
	Description string                        `gorm:"type:text"`
	Price       float64                       `gorm:"type:numeric(14,2);not null;index"`
	Features    datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	Address     string                        `gorm:"type:text"`
	Country     string                        `gorm:"type:varchar(100)"`
	State       string                        `gorm:"type:varchar(100)"`
	City        string                        `gorm:"type:varchar(100)"`
	Zip         string                        `gorm:"type:varchar(20)"`
	Latitude    *float64                      `gorm:"index:idx_properties_location"`
	Longitude   *float64                      `gorm:"index:idx_properties_location"`
	Images      datatypes.JSONSlice[ImageRef] `gorm:"type:jsonb"`
	Views       int64                         `gorm:"not null;default:0"`
	CreatedAt   time.Time                     `gorm:"index"`
	UpdatedAt   time.Time

	Seller *SellerProfileModel `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}

// SavedPropertyModel mirrors the 'saved_properties' join table.
type SavedPropertyModel struct {
	AccountID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time

	Account  *AccountModel  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SavedPropertyModel) TableName() string {
	return "saved_properties"
}
