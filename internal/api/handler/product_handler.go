package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/api/metrics"
	"github.com/storedemo/store-api/internal/core/ports"
)

type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List returns a page of products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page  query     int  false  "0-based page number"
// @Param        size  query     int  false  "page size"
// @Success      200   {object}  pageResponse[productSummaryResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.products.Paginate(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toProductSummaryResponse))
}

// Get returns one product with its category.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "product id"
// @Success      200  {object}  productDetailsResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	details, err := h.products.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductDetailsResponse(details))
}

// Create adds a product. Its category must exist and be active.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productDetailsResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	details, err := h.products.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}
	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProductDetailsResponse(details))
}

// Update replaces a product.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "product id"
// @Param        body  body      productRequest  true  "Updated details"
// @Success      200   {object}  productDetailsResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	details, err := h.products.Update(c.Request().Context(), id, toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductDetailsResponse(details))
}

// Delete removes a product.
//
// @Summary      Delete product
// @Tags         products
// @Param        id  path  int  true  "product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.products.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
