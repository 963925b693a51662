package validator

import (
	"strings"
	"testing"

	domainerrors "estate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sellerForm struct {
	Email  string `json:"email" validate:"required,email"`
	Tier   string `json:"subscriptionTier" validate:"omitempty,tier"`
	Status string `json:"status" validate:"omitempty,sellerstatus"`
	Site   string `json:"companyWebsite,omitempty" validate:"omitempty,url"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sellerForm{Email: "a@x.com", Tier: "BASIC", Status: "VERIFIED", Site: "https://acme.example"}))
	assert.NoError(t, v.Validate(&sellerForm{Email: "a@x.com"}))
}

func TestValidate_ReportsEveryFieldByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&sellerForm{Email: "nope", Tier: "GOLD", Status: "DONE", Site: "not a url"})
	require.Error(t, err)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindValidationFailed, appErr.Kind())
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "subscriptionTier must be one of: FREE BASIC PREMIUM")
	assert.Contains(t, appErr.Details(), "status must be one of: PENDING VERIFIED REJECTED")
	assert.Contains(t, appErr.Details(), "companyWebsite must be a valid URL")
}

func TestValidate_BcryptLengthCountsBytes(t *testing.T) {
	type passwordForm struct {
		Password string `json:"password" validate:"required,bcryptlen"`
	}
	v := New()

	assert.NoError(t, v.Validate(&passwordForm{Password: strings.Repeat("x", 72)}))
	assert.NoError(t, v.Validate(&passwordForm{Password: strings.Repeat("ü", 36)}))

	err := v.Validate(&passwordForm{Password: strings.Repeat("ü", 37)})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.(domainerrors.AppError).Details(), "password must be at most 72 bytes")
}
