package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storedemo/store-api/internal/core/domain"
)

var testSecret = base64.StdEncoding.EncodeToString(bytes.Repeat([]byte("k"), 32))

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, 60)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestNewTokenService_RejectsBadKeyMaterial(t *testing.T) {
	if _, err := NewTokenService("not-base64!!!", 60); err == nil {
		t.Fatalf("expected error for invalid base64 key")
	}

	short := base64.StdEncoding.EncodeToString([]byte("too-short"))
	if _, err := NewTokenService(short, 60); err == nil {
		t.Fatalf("expected error for short key")
	}

	if _, err := NewTokenService(testSecret, 0); err == nil {
		t.Fatalf("expected error for non-positive expiration")
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(42, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	id, role, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", role)
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Validate(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestTokenService_RejectsTamperedSignature(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(7, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestTokenService_RejectsWrongKey(t *testing.T) {
	svc := newTestTokenService(t)

	otherSecret := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte("x"), 32))
	other, err := NewTokenService(otherSecret, 60)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := other.Issue(7, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign token, got %v", err)
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	svc := newTestTokenService(t)

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(9, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Just inside the 60 minute window.
	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, _, err := svc.Validate(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	// Just past it.
	svc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	if _, _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_RejectsNonNumericSubject(t *testing.T) {
	svc := newTestTokenService(t)

	key, _ := base64.StdEncoding.DecodeString(testSecret)
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": string(domain.RoleCustomer),
		"type": "access_token",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for non-numeric subject, got %v", err)
	}
}

func TestTokenService_RejectsMissingExpiry(t *testing.T) {
	svc := newTestTokenService(t)

	key, _ := base64.StdEncoding.DecodeString(testSecret)
	claims := jwt.MapClaims{
		"sub":  "5",
		"role": string(domain.RoleCustomer),
		"type": "access_token",
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token without exp, got %v", err)
	}
}

func TestTokenService_UnknownRoleSurvivesDecoding(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(3, domain.Role("auditor"))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	id, role, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
	if role != domain.RoleUnknown {
		t.Fatalf("expected unknown role, got %q", role)
	}
}
