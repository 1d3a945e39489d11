package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrInvalidCredentials covers every login failure: unknown email,
	// wrong password, disabled account. Callers must not reveal which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token validation failure: missing,
	// malformed, bad signature, expired, non-numeric subject. The request
	// authenticator recovers it into "no principal"; it never reaches
	// the client.
	ErrInvalidToken = errors.New("invalid token")

	// ErrAccessDenied is raised by the role gate for unauthenticated or
	// wrong-role requests on protected routes.
	ErrAccessDenied = errors.New("access forbidden")

	ErrTooManyAttempts = errors.New("too many login attempts")
)

// InvalidDataError reports a field-level validation or integrity failure
// (duplicate name, inactive category, ...). It renders as a 400 with the
// offending field and value.
type InvalidDataError struct {
	Type    string
	Field   string
	Message string
	Value   any
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Field, e.Message, e.Value)
}

// NewInvalidData builds an InvalidDataError.
func NewInvalidData(typ, field, message string, value any) *InvalidDataError {
	return &InvalidDataError{Type: typ, Field: field, Message: message, Value: value}
}
