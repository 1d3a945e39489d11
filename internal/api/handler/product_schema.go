package handler

import (
	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
	CategoryID  int     `json:"category_id" validate:"required,gt=0"`
}

// productSummaryResponse is the lightweight item used in list responses.
type productSummaryResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	IsActive   bool    `json:"is_active"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	CategoryID int     `json:"category_id"`
}

type productDetailsResponse struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	IsActive    bool              `json:"is_active"`
	Price       float64           `json:"price"`
	Quantity    int               `json:"quantity"`
	Category    *categoryResponse `json:"category,omitempty"`
}

func toProductInput(req productRequest) ports.ProductRegister {
	return ports.ProductRegister{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  req.CategoryID,
	}
}

func toProductSummaryResponse(p *domain.Product) productSummaryResponse {
	return productSummaryResponse{
		ID:         p.ID,
		Name:       p.Name,
		IsActive:   p.IsActive,
		Price:      p.Price,
		Quantity:   p.Quantity,
		CategoryID: p.CategoryID,
	}
}

func toProductDetailsResponse(d *ports.ProductDetails) productDetailsResponse {
	resp := productDetailsResponse{
		ID:          d.Product.ID,
		Name:        d.Product.Name,
		Description: d.Product.Description,
		IsActive:    d.Product.IsActive,
		Price:       d.Product.Price,
		Quantity:    d.Product.Quantity,
	}
	if d.Category != nil {
		cat := toCategoryResponse(d.Category)
		resp.Category = &cat
	}
	return resp
}
