// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	Name            string     `gorm:"type:varchar(100)"`
	ImageURL        string     `gorm:"column:image_url;type:text"`
	ImagePublicID   string     `gorm:"column:image_public_id;type:varchar(255)"`
	Language        string     `gorm:"type:varchar(16)"`
	Role            string     `gorm:"type:varchar(20);not null;default:user;index"`
	IsEmailVerified bool       `gorm:"not null;default:false"`
	OTPHash         *string    `gorm:"column:otp_hash;type:varchar(255)"`
	OTPExpiresAt    *time.Time `gorm:"column:otp_expires_at"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	SellerProfile *SellerProfileModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// SellerProfileModel mirrors the 'seller_profiles' table. AccountID references accounts.id.
type SellerProfileModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Status           string    `gorm:"type:varchar(16);not null;default:PENDING;index"`
	CompanyName      string    `gorm:"type:varchar(255);not null"`
	CompanyWebsite   string    `gorm:"type:varchar(255)"`
	Phone            string    `gorm:"type:varchar(32)"`
	Address          string    `gorm:"type:text"`
	Country          string    `gorm:"type:varchar(100)"`
	State            string    `gorm:"type:varchar(100)"`
	City             string    `gorm:"type:varchar(100)"`
	Zip              string    `gorm:"type:varchar(20)"`
	SubscriptionTier string    `gorm:"type:varchar(16);not null;default:FREE"`
	Document         string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerProfileModel) TableName() string {
	return "seller_profiles"
}
