package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/core/domain"
)

type stubAuthService struct {
	token     string
	principal domain.Principal
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return "", domain.ErrInvalidCredentials
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	if token == s.token {
		return s.principal, nil
	}
	return domain.Principal{}, domain.ErrInvalidToken
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{
		token:     "good-token",
		principal: domain.Principal{CustomerID: 7, Name: "Alice", Role: domain.RoleCustomer},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(auth)(func(c echo.Context) error {
		called = true
		p, ok := CurrentPrincipal(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		if p.CustomerID != 7 || p.Role != domain.RoleCustomer {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{token: "good-token"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(auth)(func(c echo.Context) error {
		called = true
		if _, ok := CurrentPrincipal(c); ok {
			t.Fatalf("principal set for anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_InvalidTokenIsAnonymous(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{token: "good-token"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(auth)(func(c echo.Context) error {
		called = true
		if _, ok := CurrentPrincipal(c); ok {
			t.Fatalf("principal set for invalid token")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_NonBearerSchemeIsAnonymous(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{token: "good-token"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic Z29vZC10b2tlbg==")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(auth)(func(c echo.Context) error {
		if _, ok := CurrentPrincipal(c); ok {
			t.Fatalf("principal set for non-bearer scheme")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
