package service

import (
	"time"

	"estate/internal/domain/entity"
)

// OTPIssuer creates email verification codes and checks them.
type OTPIssuer interface {
	// Issue returns a uniformly random 6 digit code expiring after the configured TTL.
	Issue() (entity.OneTimeCode, error)

	// Hash digests a code for storage.
	Hash(code int) (string, error)

	// Verify reports whether code matches digest.
	Verify(code int, digest string) bool

	// Expired reports whether now is strictly after expiresAt.
	Expired(expiresAt time.Time) bool
}
