package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/api/middleware"
	"github.com/storedemo/store-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	return domain.Principal{}, domain.ErrInvalidToken
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/customers/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["access_token"] != "signed-token" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/customers/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_RejectsMalformedPayload(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	})

	body := strings.NewReader(`{"email":"not-an-email","password":""}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/customers/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Current_Anonymous(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null body, got %q", rec.Body.String())
	}
}

func TestAuthHandler_Current_Authenticated(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, domain.Principal{CustomerID: 7, Name: "Alice", Role: domain.RoleCustomer})

	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp principalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 7 || resp.Name != "Alice" || resp.Role != "customer" {
		t.Fatalf("unexpected principal body: %+v", resp)
	}
}
