// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"estate/config"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher. bcrypt embeds the salt in the digest.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the configured work factor.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return newBcryptHasher(cost)
}

func newBcryptHasher(cost int) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt digest.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")
	}
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(digest), nil
}

// Check compares in constant time via bcrypt.
func (h *bcryptHasher) Check(plaintext, digest string) bool {
	return h.Verify(plaintext, digest) == nil
}

// Verify separates a wrong secret from a digest bcrypt cannot parse.
func (h *bcryptHasher) Verify(plaintext, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domainerrors.ErrInvalidCredentials
	}

	return errors.Wrap(domainerrors.ErrInvalidDigest, err.Error())
}
