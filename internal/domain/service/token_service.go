package service

import (
	"time"

	"estate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	AccountID uuid.UUID   `json:"accountId"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	Type      string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService signs and validates bearer tokens.
type TokenService interface {
	// IssueTokens signs an access and a refresh token with distinct secrets.
	IssueTokens(accountID uuid.UUID, email string, role entity.Role) (*TokenPair, error)

	ValidateAccessToken(token string) (*Claims, error)
	ValidateRefreshToken(token string) (*Claims, error)
}
