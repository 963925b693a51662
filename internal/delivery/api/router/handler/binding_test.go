package handler

import (
	"net/url"
	"strings"
	"testing"

	"estate/internal/delivery/api/validator"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValues(t *testing.T) {
	form := formValues(url.Values{
		"name":     {"  Ana  "},
		"empty":    {""},
		"price":    {"12.5"},
		"bad":      {"twelve"},
		"features": {"balcony, lift", "garden", " "},
		"flag":     {"true"},
	})

	assert.Equal(t, "Ana", form.text("name"))
	assert.Nil(t, form.optText("missing"))
	require.NotNil(t, form.optText("empty"))
	assert.Empty(t, *form.optText("empty"))

	price, err := form.optFloat("price")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, *price, 1e-9)

	missing, err := form.optFloat("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = form.optFloat("bad")
	assert.Error(t, err)

	assert.Equal(t, []string{"balcony", "lift", "garden"}, form.list("features"))
	assert.Nil(t, form.list("missing"))

	flag, err := form.flag("flag")
	require.NoError(t, err)
	assert.True(t, flag)
}

func TestUpdateProfileRequest_SellerInput(t *testing.T) {
	req := &UpdateProfileRequest{}
	assert.Nil(t, req.sellerInput())

	tier := "BASIC"
	req.SubscriptionTier = &tier
	seller := req.sellerInput()
	require.NotNil(t, seller)
	require.NotNil(t, seller.SubscriptionTier)
	assert.Equal(t, entity.SubscriptionBasic, *seller.SubscriptionTier)
}

func TestCreatePropertyRequest_BindForm(t *testing.T) {
	var req CreatePropertyRequest
	err := req.bindForm(formValues(url.Values{
		"title":     {"Flat"},
		"price":     {"1000"},
		"latitude":  {"38.7"},
		"longitude": {"-9.1"},
		"features":  {"lift"},
	}))
	require.NoError(t, err)

	assert.Equal(t, "Flat", req.Title)
	assert.InDelta(t, 1000, req.Price, 1e-9)
	point := geoPoint(req.Latitude, req.Longitude)
	require.NotNil(t, point)
	assert.InDelta(t, -9.1, point.Longitude, 1e-9)

	err = req.bindForm(formValues(url.Values{"price": {"lots"}}))
	assert.Error(t, err)
}

func TestPasswordRequests_LimitBytesNotRunes(t *testing.T) {
	v := validator.New()
	multibyte := strings.Repeat("é", 72)

	register := &RegisterUserRequest{UserFieldsRequest{Email: "ana@example.com", Password: multibyte, Name: "Ana"}}
	err := v.Validate(register)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.(domainerrors.AppError).Details(), "password must be at most 72 bytes")

	update := &UpdatePasswordRequest{Email: "ana@example.com", CurrentPassword: "secret1", NewPassword: multibyte}
	require.ErrorIs(t, v.Validate(update), domainerrors.ErrValidationFailed)

	register.Password = strings.Repeat("é", 36)
	assert.NoError(t, v.Validate(register))
	update.NewPassword = strings.Repeat("a", 72)
	assert.NoError(t, v.Validate(update))
}
