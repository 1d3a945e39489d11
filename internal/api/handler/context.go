package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/api/middleware"
	"github.com/storedemo/store-api/internal/core/domain"
)

// currentPrincipal reads the principal published by the authentication
// middleware. The second return is false for anonymous requests.
func currentPrincipal(c echo.Context) (domain.Principal, bool) {
	return middleware.CurrentPrincipal(c)
}

// requirePrincipal is for handlers behind a role gate: by the time they run
// a principal must exist, so absence is treated as access denial rather
// than a server fault.
func requirePrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return domain.Principal{}, domain.ErrAccessDenied
	}
	return principal, nil
}
