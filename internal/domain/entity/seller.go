package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus is the back-office review state of a seller.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// IsValid checks if the status is a known value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}

// SubscriptionTier is the seller's plan.
type SubscriptionTier string

const (
	SubscriptionFree    SubscriptionTier = "FREE"
	SubscriptionBasic   SubscriptionTier = "BASIC"
	SubscriptionPremium SubscriptionTier = "PREMIUM"
)

// IsValid checks if the tier is a known value.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionFree, SubscriptionBasic, SubscriptionPremium:
		return true
	default:
		return false
	}
}

// SellerProfile extends an Account 1:1 with company data.
type SellerProfile struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	Status           VerificationStatus
	CompanyName      string
	CompanyWebsite   string
	Phone            string
	Address          string
	Country          string
	State            string
	City             string
	Zip              string
	SubscriptionTier SubscriptionTier
	Document         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SellerFilter narrows seller listings.
type SellerFilter struct {
	Status     VerificationStatus
	Pagination Pagination
}
