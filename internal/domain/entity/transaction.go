package entity

import "github.com/shopspring/decimal"

// Valores reservados ("sentinelas") para transacciones sin referencia real.
const (
	// UnassignedClientID marca una transacción sin cliente resoluble.
	UnassignedClientID = "unassigned"
	// ManualCardMarker marca un registro manual sin tarjeta física.
	ManualCardMarker = "manual"
)

// FuelTransaction representa una compra de combustible del libro mayor.
//
// ClientID es una referencia débil: si el cliente se elimina, la transacción
// queda huérfana (no se limpia en cascada). La pertenencia de la tarjeta se
// valida solo al crear/editar, nunca retroactivamente.
type FuelTransaction struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"clientId"` // ID de cliente o UnassignedClientID
	FuelCardNumber   string          `json:"fuelCardNumber"`
	Date             string          `json:"date"` // YYYY-MM-DD
	Time             string          `json:"time"` // HH:MM, 24 horas
	FuelType         string          `json:"fuelType"`
	StationName      string          `json:"stationName"`
	StationAddress   string          `json:"stationAddress"`
	Liters           decimal.Decimal `json:"liters"`       // decimal positivo
	CostPerLiter     decimal.Decimal `json:"costPerLiter"` // precio de compra (mayorista), no negativo
	ShowCostToClient bool            `json:"showCostToClient"`
}

// Unassigned indica si la transacción carece de referencia de cliente.
func (t *FuelTransaction) Unassigned() bool {
	return t.ClientID == "" || t.ClientID == UnassignedClientID
}
