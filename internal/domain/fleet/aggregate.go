// Package fleet agrega métricas de flota sobre un conjunto de transacciones.
package fleet

import (
	"github.com/shopspring/decimal"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/pricing"
)

// Totals métricas acumuladas de un conjunto de transacciones.
type Totals struct {
	Liters  decimal.Decimal
	Revenue decimal.Decimal // suma de totales de línea a precio de venta
	Margin  decimal.Decimal // ganancia total del operador
	Count   int
}

// Aggregate calcula los totales de flota. La resolución de márgenes se hace
// contra la lista de clientes vigente: una transacción sin cliente aporta
// litros y facturación pero margen cero.
func Aggregate(txs []entity.FuelTransaction, clients []entity.Client) Totals {
	t := Totals{
		Liters:  decimal.Zero,
		Revenue: decimal.Zero,
		Margin:  decimal.Zero,
	}
	for i := range txs {
		client := entity.FindClientByID(clients, txs[i].ClientID)
		t.Liters = t.Liters.Add(txs[i].Liters)
		t.Revenue = t.Revenue.Add(pricing.LineTotal(&txs[i], client))
		t.Margin = t.Margin.Add(pricing.LineMargin(&txs[i], client))
		t.Count++
	}
	return t
}
