package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// ProductRegister is the input for creating or updating a product.
type ProductRegister struct {
	Name        string
	Description string
	IsActive    bool
	Price       float64
	Quantity    int
	CategoryID  int
}

// ProductDetails is the full product view, including its category.
type ProductDetails struct {
	Product  *domain.Product
	Category *domain.Category
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Paginate(ctx context.Context, q PageQuery) (Page[*domain.Product], error)
	GetByID(ctx context.Context, id int) (*ProductDetails, error)
	Create(ctx context.Context, in ProductRegister) (*ProductDetails, error)
	Update(ctx context.Context, id int, in ProductRegister) (*ProductDetails, error)
	DeleteByID(ctx context.Context, id int) error
}
