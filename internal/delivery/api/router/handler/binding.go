package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	deliverycontext "estate/internal/delivery/context"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxImagesPerRequest = 20

// formBinder is implemented by request DTOs that also accept multipart forms.
type formBinder interface {
	bindForm(form formValues) error
}

// bindRequest fills req from a JSON body or, for multipart requests, from the
// form fields, then validates it.
func bindRequest(c echo.Context, req formBinder) error {
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
		}
		if err := req.bindForm(formValues(form.Value)); err != nil {
			return err
		}
	} else if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// bindJSON binds and validates a plain JSON or query request.
func bindJSON(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formValues reads typed fields from a multipart form.
type formValues url.Values

// raw returns the field untrimmed, for secrets.
func (f formValues) raw(key string) string {
	return url.Values(f).Get(key)
}

func (f formValues) text(key string) string {
	return strings.TrimSpace(url.Values(f).Get(key))
}

func (f formValues) optText(key string) *string {
	if !url.Values(f).Has(key) {
		return nil
	}
	v := f.text(key)

	return &v
}

func (f formValues) optFloat(key string) (*float64, error) {
	raw := f.optText(key)
	if raw == nil || *raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(key + " must be a number")
	}

	return &v, nil
}

func (f formValues) float(key string) (float64, error) {
	v, err := f.optFloat(key)
	if err != nil || v == nil {
		return 0, err
	}

	return *v, nil
}

func (f formValues) flag(key string) (bool, error) {
	raw := f.text(key)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithDetails(key + " must be true or false")
	}

	return v, nil
}

// list accepts both repeated fields and one comma separated field.
func (f formValues) list(key string) []string {
	raw, ok := url.Values(f)[key]
	if !ok {
		return nil
	}

	out := []string{}
	for _, v := range raw {
		for item := range strings.SplitSeq(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}

	return out
}

// formImage returns the single image uploaded under field, or nil when absent.
func formImage(c echo.Context, field string) (*service.ImageUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable file " + field)
	}

	upload, err := readUpload(header)
	if err != nil {
		return nil, err
	}

	return &upload, nil
}

// formImages returns every image uploaded under field.
func formImages(c echo.Context, field string) ([]service.ImageUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
	}

	headers := form.File[field]
	if len(headers) > maxImagesPerRequest {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at most " + strconv.Itoa(maxImagesPerRequest) + " images per request")
	}

	uploads := make([]service.ImageUpload, 0, len(headers))
	for _, header := range headers {
		upload, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

func readUpload(header *multipart.FileHeader) (service.ImageUpload, error) {
	file, err := header.Open()
	if err != nil {
		return service.ImageUpload{}, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return service.ImageUpload{}, errors.Wrap(err, "failed to read uploaded file")
	}
	if len(data) == 0 {
		return service.ImageUpload{}, domainerrors.ErrValidationFailed.WithDetails("file " + header.Filename + " is empty")
	}

	return service.ImageUpload{
		Filename:    header.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// claimsOf returns the caller identity set by the auth middleware.
func claimsOf(c echo.Context) (*service.Claims, error) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}
