package qrcode

import (
	"net/url"
	"path"
	"strings"

	"estate/config"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize       = 256
	defaultBaseURL    = "http://localhost:3000"
	propertyPathToken = "properties"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService is the fx provider; it falls back to a medium level 256px code.
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	size, level, base := defaultSize, "M", defaultBaseURL
	if qr := cfg.QRCode; qr != nil {
		if qr.Size > 0 {
			size = qr.Size
		}
		if qr.ErrorCorrectionLevel != "" {
			level = qr.ErrorCorrectionLevel
		}
		if qr.BaseURL != "" {
			base = qr.BaseURL
		}
	}

	return newQRCodeService(size, level, base)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) (*qrcodeService, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("invalid qrcode base url: %q", baseURL)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              parsed,
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// propertyLink is the public page a scanned code opens.
func (s *qrcodeService) propertyLink(propertyID uuid.UUID) string {
	link := *s.baseURL
	link.Path = path.Join("/", s.baseURL.Path, propertyPathToken, propertyID.String())

	return link.String()
}

func (s *qrcodeService) GeneratePropertyQR(propertyID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.propertyLink(propertyID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) ParsePropertyLink(link string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse property link")
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != propertyPathToken {
		return uuid.Nil, errors.Errorf("not a property link: %s", link)
	}

	propertyID, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse property ID")
	}

	return propertyID, nil
}
