package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"estate/config"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/jonboulle/clockwork"
)

const defaultOTPTTL = 10 * time.Minute

var otpSpan = big.NewInt(entity.OTPMax - entity.OTPMin + 1)

// otpIssuer draws codes from crypto/rand and digests them with the password hasher.
type otpIssuer struct {
	hasher service.PasswordHasher
	clock  clockwork.Clock
	ttl    time.Duration
}

// NewOTPIssuer wires the issuer with the configured TTL.
func NewOTPIssuer(hasher service.PasswordHasher, clock clockwork.Clock, cfg *config.Config) service.OTPIssuer {
	ttl := defaultOTPTTL
	if cfg != nil && cfg.Auth != nil && cfg.Auth.OTPTTL > 0 {
		ttl = cfg.Auth.OTPTTL
	}

	return &otpIssuer{
		hasher: hasher,
		clock:  clock,
		ttl:    ttl,
	}
}

func (i *otpIssuer) Issue() (entity.OneTimeCode, error) {
	n, err := rand.Int(rand.Reader, otpSpan)
	if err != nil {
		return entity.OneTimeCode{}, errors.Wrap(err, "failed to draw otp")
	}

	return entity.OneTimeCode{
		Code:      entity.OTPMin + int(n.Int64()),
		ExpiresAt: i.clock.Now().Add(i.ttl),
	}, nil
}

func (i *otpIssuer) Hash(code int) (string, error) {
	return i.hasher.Hash(strconv.Itoa(code))
}

func (i *otpIssuer) Verify(code int, digest string) bool {
	return i.hasher.Check(strconv.Itoa(code), digest)
}

// Expired has no grace window.
func (i *otpIssuer) Expired(expiresAt time.Time) bool {
	return i.clock.Now().After(expiresAt)
}
