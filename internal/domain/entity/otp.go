package entity

import "time"

// OTP bounds.
const (
	OTPMin = 100000
	OTPMax = 999999
)

// OneTimeCode is a freshly issued code. Only its digest is ever persisted.
type OneTimeCode struct {
	Code      int
	ExpiresAt time.Time
}
