package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type categoryResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

func toCategoryResponse(cat *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		IsActive:    cat.IsActive,
	}
}

// List returns a page of categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        page  query     int  false  "0-based page number"
// @Param        size  query     int  false  "page size"
// @Success      200   {object}  pageResponse[categoryResponse]
// @Router       /api/products/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, err := h.categories.Paginate(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toCategoryResponse))
}

// Get returns one category by id.
//
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.categories.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Create adds a category. Names are unique, case-insensitively.
//
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/products/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categories.Create(c.Request().Context(), ports.CategoryData{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// Update replaces a category.
//
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "category id"
// @Param        body  body      categoryRequest  true  "Updated details"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/products/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categories.Update(c.Request().Context(), id, ports.CategoryData{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Delete removes a category.
//
// @Summary      Delete category
// @Tags         categories
// @Param        id  path  int  true  "category id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/products/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.categories.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
