package context

import (
	"develfood/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyClaims is the echo.Context key of the verified token claims.
const KeyClaims ContextKey = "claims"

// SetClaims stores the claims of a verified bearer token.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaims returns the claims set by the auth gate, if the request carried a token.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(string(KeyClaims)).(*service.Claims)

	return claims, ok && claims != nil
}
