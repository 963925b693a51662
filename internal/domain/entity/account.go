// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persisted identity of a person, plain user or seller alike.
type Account struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	Name            string
	ImageURL        string
	ImagePublicID   string
	Language        string
	Role            Role
	IsEmailVerified bool
	OTPHash         *string    // nil when no code is outstanding
	OTPExpiresAt    *time.Time // set whenever OTPHash is set
	SellerProfile   *SellerProfile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SetOTP records a freshly issued code digest.
func (a *Account) SetOTP(digest string, expiresAt time.Time) {
	a.OTPHash = &digest
	a.OTPExpiresAt = &expiresAt
}

// ClearOTP removes the outstanding code so it cannot be verified again.
func (a *Account) ClearOTP() {
	a.OTPHash = nil
	a.OTPExpiresAt = nil
}

// HasOTP reports whether a code is outstanding.
func (a *Account) HasOTP() bool {
	return a.OTPHash != nil && *a.OTPHash != "" && a.OTPExpiresAt != nil
}

// IsSeller reports whether the account carries a seller profile.
func (a *Account) IsSeller() bool {
	return a.SellerProfile != nil
}

// Sanitized returns a copy safe to hand to clients: no password or OTP digests.
func (a *Account) Sanitized() *Account {
	clean := *a
	clean.PasswordHash = ""
	clean.ClearOTP()
	if a.SellerProfile != nil {
		profile := *a.SellerProfile
		clean.SellerProfile = &profile
	}

	return &clean
}

// AccountFilter narrows account listings.
type AccountFilter struct {
	Role       Role
	Pagination Pagination
}
