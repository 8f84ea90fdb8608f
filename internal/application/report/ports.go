package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// ReportRow una transacción ya resuelta para renderizar: cliente, precio de
// venta y total de línea calculados. BuyPrice es nil cuando el destinatario
// no puede ver costos de compra y la columna debe omitirse entera.
type ReportRow struct {
	Date       string
	Time       string
	ClientName string
	Card       string
	Station    string
	Address    string
	FuelType   string
	Liters     decimal.Decimal
	BuyPrice   *decimal.Decimal
	SellPrice  decimal.Decimal
	LineTotal  decimal.Decimal
}

// ReportTotals fila de totales del pie del reporte.
type ReportTotals struct {
	Liters     decimal.Decimal
	GrandTotal decimal.Decimal
}

// InvoicePDFGenerator puerto de renderizado PDF. El caso de uso entrega
// filas completamente resueltas; el layout es problema del adaptador.
type InvoicePDFGenerator interface {
	// RenderClientInvoice invoice vertical de una sola cuenta.
	RenderClientInvoice(client *entity.Client, rows []ReportRow, totals ReportTotals, labels Labels, generatedAt time.Time) ([]byte, error)
	// RenderConsolidated reporte apaisado multi-cuenta; scope nil significa
	// todas las cuentas.
	RenderConsolidated(scope *entity.Client, rows []ReportRow, totals ReportTotals, labels Labels, generatedAt time.Time) ([]byte, error)
}

// WorkbookWriter puerto de escritura XLSX.
type WorkbookWriter interface {
	// WriteTransactions una hoja "Transactions" con encabezados legibles;
	// la columna de costo de compra solo existe si las filas traen BuyPrice.
	WriteTransactions(rows []ReportRow, includeCost bool) ([]byte, error)
}
