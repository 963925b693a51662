package auth

import (
	"time"

	"estate/config"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService signs HS256 tokens; access and refresh use different secrets.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	clock         clockwork.Clock
}

// NewJWTService fails when either secret is missing, which aborts startup.
func NewJWTService(cfg *config.Config, clock clockwork.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		clock:         clock,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return svc, nil
}

func (s *jwtService) IssueTokens(accountID uuid.UUID, email string, role entity.Role) (*service.TokenPair, error) {
	now := s.clock.Now()

	access, accessExp, err := s.sign(accountID, email, role, service.TokenTypeAccess, now, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refresh, refreshExp, err := s.sign(accountID, email, role, service.TokenTypeRefresh, now, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *jwtService) ValidateAccessToken(token string) (*service.Claims, error) {
	return s.validate(token, s.accessSecret, service.TokenTypeAccess)
}

func (s *jwtService) ValidateRefreshToken(token string) (*service.Claims, error) {
	return s.validate(token, s.refreshSecret, service.TokenTypeRefresh)
}

func (s *jwtService) sign(
	accountID uuid.UUID,
	email string,
	role entity.Role,
	tokenType string,
	now time.Time,
	ttl time.Duration,
	secret []byte,
) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := &service.Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, "failed to sign %s token", tokenType)
	}

	return signed, expiresAt, nil
}

func (s *jwtService) validate(token string, secret []byte, tokenType string) (*service.Claims, error) {
	claims := &service.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != tokenType {
		return nil, errors.Errorf("expected %s token, got %q", tokenType, claims.Type)
	}

	return claims, nil
}
