// Package pricing implementa las fórmulas de precio del libro mayor
// (servicio de dominio, funciones puras sin errores).
//
//	PrecioVenta = CostoPorLitro + MargenDelCliente (0 si el cliente no resuelve)
//	TotalLínea  = Litros * PrecioVenta
//	MargenLínea = Litros * MargenDelCliente
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// SellPrice precio por litro cobrado al cliente. Con cliente nil (transacción
// huérfana o sin asignar) el margen es cero: se cobra el costo de compra.
func SellPrice(tx *entity.FuelTransaction, client *entity.Client) decimal.Decimal {
	if client == nil {
		return tx.CostPerLiter
	}
	return tx.CostPerLiter.Add(client.MarginPerLiter)
}

// LineTotal importe total de la línea en el invoice.
func LineTotal(tx *entity.FuelTransaction, client *entity.Client) decimal.Decimal {
	return tx.Liters.Mul(SellPrice(tx, client))
}

// LineMargin margen generado por la línea. Cero si el cliente no resuelve.
func LineMargin(tx *entity.FuelTransaction, client *entity.Client) decimal.Decimal {
	if client == nil {
		return decimal.Zero
	}
	return tx.Liters.Mul(client.MarginPerLiter)
}
