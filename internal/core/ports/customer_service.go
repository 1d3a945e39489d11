package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// CustomerRegistration is the input for creating a customer account.
type CustomerRegistration struct {
	DNI      string
	Name     string
	Email    string
	Password string
}

// CustomerUpdate is the input for updating a customer's identity fields.
// Passwords are not updated through this path.
type CustomerUpdate struct {
	DNI   string
	Name  string
	Email string
}

// CustomerService defines use-case operations for customer management.
type CustomerService interface {
	Paginate(ctx context.Context, q PageQuery) (Page[*domain.Customer], error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	Register(ctx context.Context, in CustomerRegistration) (*domain.Customer, error)
	Update(ctx context.Context, id int, in CustomerUpdate) (*domain.Customer, error)
	// DisableByID marks the account so it can no longer authenticate.
	// Disabling an already-disabled account is a no-op.
	DisableByID(ctx context.Context, id int) (*domain.Customer, error)
	EnableByID(ctx context.Context, id int) (*domain.Customer, error)
}
