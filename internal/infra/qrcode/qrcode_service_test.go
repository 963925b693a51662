package qrcode

import (
	"testing"

	"estate/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, err := NewQRCodeService(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestNewQRCodeService_RejectsRelativeBaseURL(t *testing.T) {
	_, err := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "estate.example"}})
	assert.Error(t, err)
}

func TestQRCodeService_GeneratePropertyQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := newQRCodeService(tt.size, "M", "https://estate.example")
			require.NoError(t, err)

			qrBytes, err := svc.GeneratePropertyQR(uuid.New())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_PropertyLinkRoundTrip(t *testing.T) {
	svc, err := newQRCodeService(256, "M", "https://estate.example/app/")
	require.NoError(t, err)
	propertyID := uuid.New()

	link := svc.propertyLink(propertyID)
	assert.Equal(t, "https://estate.example/app/properties/"+propertyID.String(), link)

	parsedID, err := svc.ParsePropertyLink(link)
	require.NoError(t, err)
	assert.Equal(t, propertyID, parsedID)
}

func TestQRCodeService_ParsePropertyLink_Invalid(t *testing.T) {
	svc, err := newQRCodeService(256, "M", "https://estate.example")
	require.NoError(t, err)

	_, err = svc.ParsePropertyLink("https://estate.example/news/" + uuid.NewString())
	assert.ErrorContains(t, err, "not a property link")

	_, err = svc.ParsePropertyLink("https://estate.example/properties/not-a-uuid")
	assert.ErrorContains(t, err, "failed to parse property ID")
}
