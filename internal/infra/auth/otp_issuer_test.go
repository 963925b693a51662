package auth

import (
	"testing"
	"time"

	"estate/config"
	"estate/internal/domain/entity"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestOTPIssuer(clock clockwork.Clock) *otpIssuer {
	return NewOTPIssuer(newBcryptHasher(bcrypt.MinCost), clock, &config.Config{}).(*otpIssuer)
}

func TestOTPIssuer_IssueRangeAndExpiry(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestOTPIssuer(clockwork.NewFakeClockAt(start))

	for range 500 {
		otp, err := issuer.Issue()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, otp.Code, entity.OTPMin)
		assert.LessOrEqual(t, otp.Code, entity.OTPMax)
		assert.Equal(t, start.Add(10*time.Minute), otp.ExpiresAt)
	}
}

func TestOTPIssuer_UsesConfiguredTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	issuer := NewOTPIssuer(newBcryptHasher(bcrypt.MinCost), clock, &config.Config{
		Auth: &config.AuthConfig{OTPTTL: 2 * time.Minute},
	})

	otp, err := issuer.Issue()
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(2*time.Minute), otp.ExpiresAt)
}

func TestOTPIssuer_RoundTripUntilExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	issuer := newTestOTPIssuer(clock)

	otp, err := issuer.Issue()
	require.NoError(t, err)
	digest, err := issuer.Hash(otp.Code)
	require.NoError(t, err)

	assert.True(t, issuer.Verify(otp.Code, digest))
	assert.False(t, issuer.Verify(otp.Code+1, digest))
	assert.False(t, issuer.Expired(otp.ExpiresAt))

	clock.Advance(10 * time.Minute)
	assert.False(t, issuer.Expired(otp.ExpiresAt), "expiry is strict: now == expiresAt is still valid")

	clock.Advance(time.Second)
	assert.True(t, issuer.Expired(otp.ExpiresAt))
}
