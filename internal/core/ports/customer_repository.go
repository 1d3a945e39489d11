package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// CustomerRepository defines persistence operations for customer accounts.
// FindByID and FindByEmail are also the auth core's principal store.
type CustomerRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context, q PageQuery) ([]*domain.Customer, int64, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	// ExistsByDNI and ExistsByEmail report whether another customer
	// (excluding excludeID, 0 = no exclusion) already uses the value.
	ExistsByDNI(ctx context.Context, dni string, excludeID int) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error)
}
