package auth

import (
	"testing"
	"time"

	"estate/config"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	clock := clockwork.NewRealClock()

	_, err := NewJWTService(&config.Config{}, clock)
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{SecretKey: config.SecretKey{Access: "only-access"}}, clock)
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{SecretKey: config.SecretKey{Access: "same", Refresh: "same"}}, clock)
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc, err := NewJWTService(newTestJWTConfig(), clock)
	require.NoError(t, err)

	accountID := uuid.New()
	pair, err := svc.IssueTokens(accountID, "a@x.com", entity.RoleSeller)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, clock.Now().Add(15*time.Minute), pair.AccessExpiresAt)
	assert.Equal(t, clock.Now().Add(7*24*time.Hour), pair.RefreshExpiresAt)

	access, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, access.AccountID)
	assert.Equal(t, "a@x.com", access.Email)
	assert.Equal(t, entity.RoleSeller, access.Role)
	assert.Equal(t, service.TokenTypeAccess, access.Type)

	refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, refresh.AccountID)
	assert.Equal(t, "a@x.com", refresh.Email)
	assert.Equal(t, entity.RoleSeller, refresh.Role)
	assert.Equal(t, service.TokenTypeRefresh, refresh.Type)
}

func TestJWTService_SecretsAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), clockwork.NewRealClock())
	require.NoError(t, err)

	pair, err := svc.IssueTokens(uuid.New(), "a@x.com", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_Expiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	svc, err := NewJWTService(newTestJWTConfig(), clock)
	require.NoError(t, err)

	pair, err := svc.IssueTokens(uuid.New(), "a@x.com", entity.RoleUser)
	require.NoError(t, err)

	clock.Advance(16 * time.Minute)
	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = svc.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_RejectsGarbageAndForeignAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), clockwork.NewRealClock())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{Type: service.TokenTypeAccess}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(unsigned)
	assert.Error(t, err)
}
