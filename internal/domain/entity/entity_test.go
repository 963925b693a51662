package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Sanitized(t *testing.T) {
	account := &Account{Email: "a@example.com", PasswordHash: "hash", SellerProfile: &SellerProfile{CompanyName: "Acme"}}
	account.SetOTP("digest", time.Now().Add(time.Minute))

	clean := account.Sanitized()

	assert.Empty(t, clean.PasswordHash)
	assert.False(t, clean.HasOTP())
	assert.Equal(t, "a@example.com", clean.Email)

	// the original is untouched and the profile is a copy
	assert.Equal(t, "hash", account.PasswordHash)
	assert.True(t, account.HasOTP())
	require.NotNil(t, clean.SellerProfile)
	clean.SellerProfile.CompanyName = "Changed"
	assert.Equal(t, "Acme", account.SellerProfile.CompanyName)
}

func TestAccount_OTPLifecycle(t *testing.T) {
	account := &Account{}
	assert.False(t, account.HasOTP())

	account.SetOTP("", time.Now())
	assert.False(t, account.HasOTP())

	account.SetOTP("digest", time.Now())
	assert.True(t, account.HasOTP())

	account.ClearOTP()
	assert.Nil(t, account.OTPHash)
	assert.Nil(t, account.OTPExpiresAt)
}

func TestNews_Publish_StampsOnce(t *testing.T) {
	first := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	news := &News{}

	news.Publish(first)
	news.IsPublished = false
	news.Publish(first.Add(48 * time.Hour))

	assert.True(t, news.IsPublished)
	require.NotNil(t, news.FirstPublishedAt)
	assert.Equal(t, first, *news.FirstPublishedAt)
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Pagination{Page: 3, Limit: 10}.Offset())
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsValid())
	assert.False(t, Role("root").IsValid())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleSeller.IsStaff())
	assert.True(t, VerificationRejected.IsValid())
	assert.False(t, VerificationStatus("pending").IsValid())
	assert.True(t, SubscriptionBasic.IsValid())
	assert.False(t, SubscriptionTier("GOLD").IsValid())
}
