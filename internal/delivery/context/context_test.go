package context_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_Fallbacks(t *testing.T) {
	c := newEchoContext()

	generated := deliverycontext.GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	c.Response().Header().Set(deliverycontext.HeaderXRequestID, "from-header")
	assert.Equal(t, "from-header", deliverycontext.GetRequestID(c))

	deliverycontext.SetRequestID(c, "from-context")
	assert.Equal(t, "from-context", deliverycontext.GetRequestID(c))
}

func TestRequestIDAndLogger_OnStandardContext(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default()

	assert.Empty(t, deliverycontext.GetRequestIDFromContext(ctx))
	assert.Nil(t, deliverycontext.GetLogger(ctx))
	assert.Same(t, fallback, deliverycontext.GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("request_id", "abc"))
	ctx = deliverycontext.WithRequestID(ctx, "abc")
	ctx = deliverycontext.WithLogger(ctx, scoped)

	assert.Equal(t, "abc", deliverycontext.GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, deliverycontext.GetLoggerOrDefault(ctx, fallback))
}

func TestSetClaims_VisibleOnBothContexts(t *testing.T) {
	c := newEchoContext()

	_, ok := deliverycontext.GetClaims(c)
	assert.False(t, ok)
	_, ok = deliverycontext.ClaimsFromContext(c.Request().Context())
	assert.False(t, ok)

	claims := &service.Claims{AccountID: uuid.New(), Email: "a@example.com", Role: entity.RoleSeller}
	deliverycontext.SetClaims(c, claims)

	got, ok := deliverycontext.GetClaims(c)
	require.True(t, ok)
	assert.Same(t, claims, got)

	got, ok = deliverycontext.ClaimsFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, claims.AccountID, got.AccountID)
}
