package handler

import (
	"time"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

type registerCustomerRequest struct {
	DNI      string `json:"dni"      validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type updateCustomerRequest struct {
	DNI   string `json:"dni"   validate:"required"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// customerResponse never carries the password hash.
type customerResponse struct {
	ID         int        `json:"id"`
	DNI        string     `json:"dni"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	DisabledAt *time.Time `json:"disabled_at,omitempty"`
}

func toRegistrationInput(req registerCustomerRequest) ports.CustomerRegistration {
	return ports.CustomerRegistration{
		DNI:      req.DNI,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

func toCustomerUpdateInput(req updateCustomerRequest) ports.CustomerUpdate {
	return ports.CustomerUpdate{
		DNI:   req.DNI,
		Name:  req.Name,
		Email: req.Email,
	}
}

func toCustomerResponse(cu *domain.Customer) customerResponse {
	return customerResponse{
		ID:         cu.ID,
		DNI:        cu.DNI,
		Name:       cu.Name,
		Email:      cu.Email,
		DisabledAt: cu.DisabledAt,
	}
}
