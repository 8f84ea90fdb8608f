package entity

import "github.com/shopspring/decimal"

// Client representa una cuenta facturable de la flota: posee una o más
// tarjetas de combustible y un margen por litro que se suma al costo de
// compra para derivar el precio cobrado.
//
// Los tags JSON definen la forma del documento persistido "clients",
// por eso viven en la entidad y no en un DTO.
type Client struct {
	ID              string          `json:"id"`
	UniqueID        string          `json:"uniqueId"` // identificador de negocio, único entre todos los clientes
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Address         string          `json:"address,omitempty"`
	FuelCardNumbers []string        `json:"fuelCardNumbers"` // sin duplicados; una tarjeta pertenece a lo sumo a un cliente
	MarginPerLiter  decimal.Decimal `json:"marginPerLiter"`  // decimal no negativo
}

// HasCard indica si la tarjeta está registrada para este cliente.
// Comparación exacta, sensible a mayúsculas.
func (c *Client) HasCard(card string) bool {
	for _, n := range c.FuelCardNumbers {
		if n == card {
			return true
		}
	}
	return false
}

// FindClientByID busca un cliente por su ID interno. Devuelve nil si no existe
// (referencia colgante: se tolera, no es un error).
func FindClientByID(clients []Client, id string) *Client {
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}

// FindClientByCard busca el cliente dueño de una tarjeta. Primera coincidencia gana.
func FindClientByCard(clients []Client, card string) *Client {
	for i := range clients {
		if clients[i].HasCard(card) {
			return &clients[i]
		}
	}
	return nil
}
