package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

// ProductService implements product management. Products reference a
// category, which must exist and be active at create/update time.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, log: log}
}

func (s *ProductService) Paginate(ctx context.Context, q ports.PageQuery) (ports.Page[*domain.Product], error) {
	q = q.Normalize()
	items, total, err := s.products.List(ctx, q)
	if err != nil {
		return ports.Page[*domain.Product]{}, err
	}
	return ports.NewPage(items, total, q), nil
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*ports.ProductDetails, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.FindByID(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	return &ports.ProductDetails{Product: product, Category: category}, nil
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductRegister) (*ports.ProductDetails, error) {
	category, err := s.validateCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.checkName(ctx, in.Name, 0); err != nil {
		return nil, err
	}

	created, err := s.products.Create(ctx, &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CategoryID:  category.ID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return &ports.ProductDetails{Product: created, Category: category}, nil
}

func (s *ProductService) Update(ctx context.Context, id int, in ports.ProductRegister) (*ports.ProductDetails, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.validateCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.checkName(ctx, in.Name, id); err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.IsActive = in.IsActive
	product.Price = in.Price
	product.Quantity = in.Quantity
	product.CategoryID = category.ID
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return &ports.ProductDetails{Product: product, Category: category}, nil
}

func (s *ProductService) DeleteByID(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}

// validateCategory ensures the referenced category exists and is active.
func (s *ProductService) validateCategory(ctx context.Context, categoryID int) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.NewInvalidData("invalid_value", "category_id", "Category not found", categoryID)
		}
		return nil, err
	}
	if !category.IsActive {
		return nil, domain.NewInvalidData("invalid_value", "category_id", "Category not active", categoryID)
	}
	return category, nil
}

func (s *ProductService) checkName(ctx context.Context, name string, excludeID int) error {
	taken, err := s.products.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.NewInvalidData("already_exists", "name", "Name already exists", name)
	}
	return nil
}
