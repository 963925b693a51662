package context

import (
	"context"

	"estate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SetClaims stores the verified claims on both the echo and the request context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(claimsKey.echoKey(), claims)
	c.SetRequest(c.Request().WithContext(WithClaims(c.Request().Context(), claims)))
}

// GetClaims returns the claims of an authenticated request.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey.echoKey()).(*service.Claims)

	return claims, ok && claims != nil
}

func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext is GetClaims for code that only sees the request context.
func ClaimsFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := lookup[*service.Claims](ctx, claimsKey)

	return claims, ok && claims != nil
}
