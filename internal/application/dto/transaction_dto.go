package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	ClientID         string          `json:"clientId" validate:"required"`
	FuelCardNumber   string          `json:"fuelCardNumber" validate:"required"`
	Date             string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string          `json:"time" validate:"required"`
	FuelType         string          `json:"fuelType,omitempty"`
	StationName      string          `json:"stationName,omitempty"`
	StationAddress   string          `json:"stationAddress,omitempty"`
	Liters           decimal.Decimal `json:"liters"`
	CostPerLiter     decimal.Decimal `json:"costPerLiter"`
	ShowCostToClient bool            `json:"showCostToClient"`
}

// UpdateTransactionRequest body para PUT /api/transactions/:id.
type UpdateTransactionRequest = CreateTransactionRequest

// LedgerQuery parámetros de GET /api/transactions.
type LedgerQuery struct {
	ClientID  string `query:"client_id"`
	Search    string `query:"search"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// TransactionResponse transacción en respuestas, con los valores derivados
// ya calculados. CostPerLiter viaja solo si el usuario puede ver costos:
// al resto se le omite junto con el margen de línea.
type TransactionResponse struct {
	ID                string           `json:"id"`
	ClientID          string           `json:"clientId"`
	ClientName        string           `json:"clientName,omitempty"`
	FuelCardNumber    string           `json:"fuelCardNumber"`
	Date              string           `json:"date"`
	Time              string           `json:"time"`
	FuelType          string           `json:"fuelType"`
	StationName       string           `json:"stationName"`
	StationAddress    string           `json:"stationAddress"`
	Liters            decimal.Decimal  `json:"liters"`
	CostPerLiter      *decimal.Decimal `json:"costPerLiter,omitempty"`
	SellPricePerLiter decimal.Decimal  `json:"sellPricePerLiter"`
	LineTotal         decimal.Decimal  `json:"lineTotal"`
	LineMargin        *decimal.Decimal `json:"lineMargin,omitempty"`
	ShowCostToClient  bool             `json:"showCostToClient"`
}

// LedgerResponse página completa del libro mayor (sin paginación: el
// snapshot es de escala mono-operador).
type LedgerResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
