package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// CategoryData is the input for creating or updating a category.
type CategoryData struct {
	Name        string
	Description string
	IsActive    bool
}

// CategoryService defines use-case operations for product categories.
type CategoryService interface {
	Paginate(ctx context.Context, q PageQuery) (Page[*domain.Category], error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, in CategoryData) (*domain.Category, error)
	Update(ctx context.Context, id int, in CategoryData) (*domain.Category, error)
	DeleteByID(ctx context.Context, id int) error
}
