package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	// FindByIDs returns the products for the given ids, keyed by id.
	// Missing ids are simply absent from the map.
	FindByIDs(ctx context.Context, ids []int) (map[int]*domain.Product, error)
	List(ctx context.Context, q PageQuery) ([]*domain.Product, int64, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int) error
	// ExistsByName matches case-insensitively, excluding excludeID (0 = none).
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
}
