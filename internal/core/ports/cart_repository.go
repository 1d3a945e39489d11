package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// CartRepository defines persistence operations for cart lines.
type CartRepository interface {
	FindByCustomer(ctx context.Context, customerID int) ([]*domain.CartLine, error)
	FindLine(ctx context.Context, customerID, productID int) (*domain.CartLine, error)
	// Upsert inserts the line or replaces the quantity of an existing one.
	Upsert(ctx context.Context, line *domain.CartLine) error
	Delete(ctx context.Context, customerID, productID int) error
}
