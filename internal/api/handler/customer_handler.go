package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/core/ports"
)

type CustomerHandler struct {
	customers ports.CustomerService
}

func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List returns a page of customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        page  query     int  false  "0-based page number"
// @Param        size  query     int  false  "page size"
// @Success      200   {object}  pageResponse[customerResponse]
// @Failure      403   {object}  errorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	page, err := h.customers.Paginate(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toCustomerResponse))
}

// Get returns one customer by id.
//
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "customer id"
// @Success      200  {object}  customerResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.customers.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Register creates a customer account.
//
// @Summary      Register customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      registerCustomerRequest  true  "Customer details"
// @Success      201   {object}  customerResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customers.Register(c.Request().Context(), toRegistrationInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// Update replaces a customer's identity fields.
//
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "customer id"
// @Param        body  body      updateCustomerRequest  true  "Updated details"
// @Success      200   {object}  customerResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customers.Update(c.Request().Context(), id, toCustomerUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Disable blocks an account from authenticating. Already-disabled accounts
// are returned unchanged.
//
// @Summary      Disable customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "customer id"
// @Success      200  {object}  customerResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Disable(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.customers.DisableByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Enable lifts a previous disable.
//
// @Summary      Enable customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "customer id"
// @Success      200  {object}  customerResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{id}/enable [patch]
func (h *CustomerHandler) Enable(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.customers.EnableByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}
