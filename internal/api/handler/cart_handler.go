package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/api/metrics"
	"github.com/storedemo/store-api/internal/core/ports"
)

type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type cartItemResponse struct {
	Quantity int                    `json:"quantity"`
	Product  productSummaryResponse `json:"product"`
}

type cartResponse struct {
	CustomerName string             `json:"customer_name"`
	Items        []cartItemResponse `json:"items"`
	Subtotal     float64            `json:"subtotal"`
}

func toCartResponse(d *ports.CustomerCartDetails) cartResponse {
	items := make([]cartItemResponse, len(d.Items))
	for i, it := range d.Items {
		items[i] = cartItemResponse{
			Quantity: it.Quantity,
			Product:  toProductSummaryResponse(it.Product),
		}
	}
	return cartResponse{
		CustomerName: d.CustomerName,
		Items:        items,
		Subtotal:     d.Subtotal,
	}
}

// Get returns the authenticated customer's cart.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	details, err := h.cart.GetCart(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(details))
}

// Add puts a product in the cart, replacing the quantity of an existing line.
//
// @Summary      Add product to cart
// @Tags         cart
// @Produce      json
// @Param        productId  path      int  true  "product id"
// @Param        quantity   path      int  true  "quantity"
// @Success      200        {object}  cartResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/cart/{productId}/{quantity} [post]
func (h *CartHandler) Add(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	quantity, err := pathID(c, "quantity")
	if err != nil {
		return err
	}

	details, err := h.cart.AddToCart(c.Request().Context(), principal, productID, quantity)
	if err != nil {
		return err
	}
	metrics.CartItemsAddedTotal.Inc()
	return c.JSON(http.StatusOK, toCartResponse(details))
}

// Remove deletes a product line from the cart.
//
// @Summary      Remove product from cart
// @Tags         cart
// @Produce      json
// @Param        productId  path      int  true  "product id"
// @Success      200        {object}  cartResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/cart/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	details, err := h.cart.RemoveFromCart(c.Request().Context(), principal, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(details))
}
