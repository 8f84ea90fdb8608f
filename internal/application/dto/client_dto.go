package dto

import "github.com/shopspring/decimal"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	UniqueID        string          `json:"uniqueId" validate:"required,min=1,max=64"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Email           string          `json:"email" validate:"omitempty,email"`
	Address         string          `json:"address,omitempty"`
	FuelCardNumbers []string        `json:"fuelCardNumbers"`
	MarginPerLiter  decimal.Decimal `json:"marginPerLiter"`
}

// UpdateClientRequest body para PUT /api/clients/:id. Mismo shape que la
// creación: la edición re-valida unicidad contra todos los demás clientes.
type UpdateClientRequest = CreateClientRequest

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID              string          `json:"id"`
	UniqueID        string          `json:"uniqueId"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Address         string          `json:"address,omitempty"`
	FuelCardNumbers []string        `json:"fuelCardNumbers"`
	MarginPerLiter  decimal.Decimal `json:"marginPerLiter"`
}
