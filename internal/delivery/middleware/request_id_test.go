package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "estate/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incoming string) (string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
	}
	rec := httptest.NewRecorder()

	var fromCtx string
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	err := mw.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(e.NewContext(req, rec))
	require.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), fromCtx
}

func TestRequestID_ReusesWellFormedHeader(t *testing.T) {
	header, fromCtx := runRequestID(t, "req-123.abc")

	assert.Equal(t, "req-123.abc", header)
	assert.Equal(t, "req-123.abc", fromCtx)
}

func TestRequestID_ReplacesMissingOrMalformedHeader(t *testing.T) {
	for _, incoming := range []string{"", "bad id with spaces", strings.Repeat("a", 65), "<script>"} {
		header, fromCtx := runRequestID(t, incoming)

		_, err := uuid.Parse(header)
		assert.NoError(t, err, incoming)
		assert.Equal(t, header, fromCtx)
	}
}
