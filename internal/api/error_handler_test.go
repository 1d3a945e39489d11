package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrAccessDenied, http.StatusForbidden, "access forbidden"},
		{domain.ErrCustomerNotFound, http.StatusNotFound, "customer not found"},
		{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{domain.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
		{domain.ErrCartItemNotFound, http.StatusNotFound, "cart item not found"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
		{errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		rec := render(t, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != tc.msg {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.msg, body["error"])
		}
	}
}

func TestErrorHandler_InvalidDataBody(t *testing.T) {
	rec := render(t, domain.NewInvalidData("already_exists", "email", "Email already exists", "a@example.com"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Field   string `json:"field"`
		Value   string `json:"value"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Type != "already_exists" || body.Field != "email" || body.Value != "a@example.com" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
