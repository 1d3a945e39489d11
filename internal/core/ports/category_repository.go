package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for product categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	List(ctx context.Context, q PageQuery) ([]*domain.Category, int64, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int) error
	// ExistsByName matches case-insensitively, excluding excludeID (0 = none).
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
}
