package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// TokenCodec signs and verifies self-contained access tokens. Both
// directions are pure in-memory operations against the process-wide
// signing key.
type TokenCodec interface {
	// Issue returns a signed access token for the given identity.
	Issue(customerID int, role domain.Role) (string, error)
	// Validate verifies the token and returns its subject and role.
	// Every failure (missing, malformed, bad signature, expired,
	// non-numeric subject) is domain.ErrInvalidToken; callers learn
	// validity, not a diagnostic.
	Validate(token string) (int, domain.Role, error)
}

// AuthService covers the login flow and per-request principal resolution.
type AuthService interface {
	// Login verifies the credentials and returns a signed access token.
	// All failures collapse to domain.ErrInvalidCredentials, except a
	// throttled account which returns domain.ErrTooManyAttempts.
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate validates a bearer token and resolves the full
	// principal from the customer store. Any failure, including an
	// unknown role or a vanished account, is domain.ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}
