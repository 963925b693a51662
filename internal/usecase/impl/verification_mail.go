package impl

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"time"

	"estate/internal/errors"
)

const verificationSubject = "Verify your email address"

//go:embed templates/verification_email.html
var templateFS embed.FS

var verificationTemplate = template.Must(template.ParseFS(templateFS, "templates/verification_email.html"))

type verificationMailData struct {
	Name         string
	Code         int
	ValidMinutes int
}

// renderVerificationMail builds the OTP email; validFor is rounded up to whole minutes.
func renderVerificationMail(name string, code int, validFor time.Duration) (string, error) {
	minutes := int(math.Ceil(validFor.Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	var buf bytes.Buffer
	if err := verificationTemplate.Execute(&buf, verificationMailData{Name: name, Code: code, ValidMinutes: minutes}); err != nil {
		return "", errors.Wrap(err, "failed to render verification email")
	}

	return buf.String(), nil
}
