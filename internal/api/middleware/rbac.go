package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/core/domain"
)

// RequireRole guards a route group to the given roles. Requests without a
// resolved principal, or whose role is not in the set, fail with
// domain.ErrAccessDenied; the central error handler turns that into a
// uniform 403 regardless of whether the caller was anonymous or merely
// under-privileged.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := CurrentPrincipal(c)
			if !ok {
				return domain.ErrAccessDenied
			}
			if _, ok := allowed[principal.Role]; !ok {
				return domain.ErrAccessDenied
			}
			return next(c)
		}
	}
}
