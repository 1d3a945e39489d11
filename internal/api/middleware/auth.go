package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which Authenticate stores the
// resolved principal. Absent when the request carried no usable token.
const PrincipalKey = "principal"

// Authenticate resolves the bearer token on each request and, when it maps
// to a live account, stores the principal in the request context. It never
// rejects a request on its own: a missing, malformed, or invalid token just
// leaves the request anonymous, and route-level guards decide what that
// means.
func Authenticate(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}

			principal, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return next(c)
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// CurrentPrincipal returns the principal resolved by Authenticate, if any.
func CurrentPrincipal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(domain.Principal)
	return p, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
