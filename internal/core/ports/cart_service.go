package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// CartItem is one line of a customer's cart joined with its product.
type CartItem struct {
	Quantity int
	Product  *domain.Product
}

// CustomerCartDetails is the full view of a customer's cart.
type CustomerCartDetails struct {
	CustomerName string
	Items        []CartItem
	Subtotal     float64
}

// CartService defines use-case operations on the authenticated customer's
// shopping cart. The principal is threaded explicitly; there is no ambient
// security context.
type CartService interface {
	GetCart(ctx context.Context, p domain.Principal) (*CustomerCartDetails, error)
	// AddToCart adds the product or replaces the quantity of an
	// existing line, then returns the updated cart.
	AddToCart(ctx context.Context, p domain.Principal, productID, quantity int) (*CustomerCartDetails, error)
	RemoveFromCart(ctx context.Context, p domain.Principal, productID int) (*CustomerCartDetails, error)
}
