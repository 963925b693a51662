// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes secrets one way with an embedded salt.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext secret.
	Hash(plaintext string) (string, error)

	// Check reports whether plaintext matches digest. A malformed digest never matches.
	Check(plaintext, digest string) bool

	// Verify is Check with the failure reason: nil on match,
	// domainerrors.ErrInvalidCredentials on mismatch, domainerrors.ErrInvalidDigest on a malformed digest.
	Verify(plaintext, digest string) error
}
