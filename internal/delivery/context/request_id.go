// Package context carries request-scoped values (request id, logger, token claims)
// between the HTTP layer and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request id.
const HeaderXRequestID = "X-Request-Id"

// valueKey keys are unexported so no other package can collide with them.
type valueKey uint8

const (
	requestIDKey valueKey = iota + 1
	loggerKey
	claimsKey
)

// echoKey is the name a value is stored under on echo.Context.
func (k valueKey) echoKey() string {
	switch k {
	case requestIDKey:
		return "estate.request_id"
	case loggerKey:
		return "estate.logger"
	case claimsKey:
		return "estate.claims"
	default:
		return ""
	}
}

func lookup[T any](ctx context.Context, key valueKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// GetRequestID returns the id assigned by the request id middleware. Requests that
// bypassed it fall back to the response header and then to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey.echoKey()).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(HeaderXRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(requestIDKey.echoKey(), requestID)
}

// GetRequestIDFromContext returns "" outside of an HTTP request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := lookup[string](ctx, requestIDKey)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := lookup[*slog.Logger](ctx, loggerKey)

	return logger
}

// GetLoggerOrDefault is what services call: the request logger when there is one,
// fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
