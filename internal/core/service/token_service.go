package service

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storedemo/store-api/internal/core/domain"
)

const (
	claimRole       = "role"
	claimType       = "type"
	tokenTypeAccess = "access_token"

	// minKeyBytes is the minimum signing key size: 256 bits for HS256.
	minKeyBytes = 32
)

// TokenService issues and validates signed access tokens. The signing key
// and TTL are fixed at construction and never mutated, so a single instance
// is safe for concurrent use.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenService builds the codec from the configured key material and TTL.
// The secret must be base64 and decode to at least minKeyBytes bytes; a bad
// key or non-positive TTL is a startup error, never a per-request one.
func NewTokenService(secretBase64 string, expirationMinutes int) (*TokenService, error) {
	key, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("token: signing key is not valid base64: %w", err)
	}
	if len(key) < minKeyBytes {
		return nil, fmt.Errorf("token: signing key must decode to at least %d bytes, got %d", minKeyBytes, len(key))
	}
	if expirationMinutes <= 0 {
		return nil, fmt.Errorf("token: expiration must be a positive number of minutes, got %d", expirationMinutes)
	}
	return &TokenService{
		key: key,
		ttl: time.Duration(expirationMinutes) * time.Minute,
		now: time.Now,
	}, nil
}

// Issue signs an access token whose subject is the customer id and whose
// expiry is issue time plus the configured TTL.
func (s *TokenService) Issue(customerID int, role domain.Role) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":     strconv.Itoa(customerID),
		claimRole: string(role),
		claimType: tokenTypeAccess,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}

// Validate verifies the signature and expiry and parses the subject back to
// a customer id. Expiry must be strictly in the future. All failure modes
// collapse to domain.ErrInvalidToken.
func (s *TokenService) Validate(token string) (int, domain.Role, error) {
	if token == "" {
		return 0, domain.RoleUnknown, domain.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return 0, domain.RoleUnknown, domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.RoleUnknown, domain.ErrInvalidToken
	}
	id, err := strconv.Atoi(sub)
	if err != nil || id <= 0 {
		return 0, domain.RoleUnknown, domain.ErrInvalidToken
	}

	role, _ := claims[claimRole].(string)
	return id, domain.ParseRole(role), nil
}
