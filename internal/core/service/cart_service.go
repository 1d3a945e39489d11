package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

// CartService implements the authenticated customer's shopping cart.
// All operations are scoped to the principal passed in; there is no
// ambient security context.
type CartService struct {
	cart     ports.CartRepository
	products ports.ProductRepository
	activity ActivityDispatcher
	log      zerolog.Logger
}

// NewCartService wires the cart use cases. activity may be nil.
func NewCartService(cart ports.CartRepository, products ports.ProductRepository, activity ActivityDispatcher, log zerolog.Logger) *CartService {
	return &CartService{cart: cart, products: products, activity: activity, log: log}
}

func (s *CartService) GetCart(ctx context.Context, p domain.Principal) (*ports.CustomerCartDetails, error) {
	return s.cartDetails(ctx, p)
}

// AddToCart puts the product in the cart, replacing the quantity of an
// existing line. Inactive products cannot be added.
func (s *CartService) AddToCart(ctx context.Context, p domain.Principal, productID, quantity int) (*ports.CustomerCartDetails, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domain.NewInvalidData("invalid_value", "product_id", "Product is not active, can't be added to cart", productID)
	}
	if quantity <= 0 {
		return nil, domain.NewInvalidData("invalid_value", "quantity", "Quantity must be greater than 0", quantity)
	}

	line := &domain.CartLine{
		CustomerID: p.CustomerID,
		ProductID:  productID,
		Quantity:   quantity,
	}
	if existing, err := s.cart.FindLine(ctx, p.CustomerID, productID); err == nil {
		line.ID = existing.ID
	} else if !errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, err
	}

	if err := s.cart.Upsert(ctx, line); err != nil {
		return nil, err
	}

	s.recordActivity(p.CustomerID, domain.ActivityCartAdd, productID)
	return s.cartDetails(ctx, p)
}

func (s *CartService) RemoveFromCart(ctx context.Context, p domain.Principal, productID int) (*ports.CustomerCartDetails, error) {
	if err := s.cart.Delete(ctx, p.CustomerID, productID); err != nil {
		return nil, err
	}

	s.recordActivity(p.CustomerID, domain.ActivityCartRemove, productID)
	return s.cartDetails(ctx, p)
}

// cartDetails joins the customer's lines with their products and computes
// the subtotal. Lines whose product has vanished are skipped.
func (s *CartService) cartDetails(ctx context.Context, p domain.Principal) (*ports.CustomerCartDetails, error) {
	lines, err := s.cart.FindByCustomer(ctx, p.CustomerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	productsByID, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := &ports.CustomerCartDetails{
		CustomerName: p.Name,
		Items:        make([]ports.CartItem, 0, len(lines)),
	}
	for _, l := range lines {
		product, ok := productsByID[l.ProductID]
		if !ok {
			s.log.Warn().Int("product_id", l.ProductID).Int("customer_id", p.CustomerID).Msg("cart line references missing product")
			continue
		}
		details.Items = append(details.Items, ports.CartItem{Quantity: l.Quantity, Product: product})
		details.Subtotal += float64(l.Quantity) * product.Price
	}
	return details, nil
}

func (s *CartService) recordActivity(customerID int, action domain.ActivityAction, productID int) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(domain.ActivityEvent{
		CustomerID: customerID,
		Action:     action,
		ProductID:  productID,
		Timestamp:  time.Now().UTC(),
	})
}
