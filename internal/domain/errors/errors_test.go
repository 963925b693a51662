package errors

import (
	"io"
	"net/http"
	"testing"

	"estate/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: io.EOF, want: KindInternal},
		{name: "not found wrapped", err: ErrAccountNotFound.WrapMessage("lookup"), want: KindNotFound},
		{name: "conflict twice wrapped", err: errors.Wrap(ErrAccountAlreadyExists.WrapMessage("insert"), "register"), want: KindConflict},
		{name: "expired", err: ErrOTPExpired, want: KindExpired},
		{name: "invalid code", err: ErrInvalidOTP, want: KindInvalidCode},
		{name: "upstream", err: errors.Wrap(NewUpstreamError("mail", io.ErrUnexpectedEOF), "register"), want: KindUpstreamFailure},
		{name: "database", err: NewDatabaseExecuteError(io.EOF, "insert"), want: KindInternal},
		{name: "rate limited", err: ErrRateLimited, want: KindRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email: required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrInvalidOTP))
	assert.Equal(t, "email: required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
}

func TestUpstreamError_Unwraps(t *testing.T) {
	err := NewUpstreamError("image storage", io.ErrClosedPipe)

	assert.True(t, errors.Is(err, io.ErrClosedPipe))
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Contains(t, err.Error(), "image storage call failed")
}
