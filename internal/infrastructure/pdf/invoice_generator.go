// Package pdf renderiza los invoices del libro mayor con Maroto v2.
//
// Dos layouts:
//
//	┌──────────────────────────────────────────────┐
//	│  INVOICE DE CUENTA (A4 vertical)             │
//	│  Título + ID/Nombre/Dirección + Fecha        │
//	│  Tabla: Fecha | Tarjeta | АЗС | Tipo |       │
//	│         Litros | Precio/L | Total            │
//	│  Pie: TOTAL GENERAL                          │
//	├──────────────────────────────────────────────┤
//	│  REPORTE CONSOLIDADO (A4 apaisado)           │
//	│  Título + alcance (una cuenta o todas)       │
//	│  Tabla con columna de cliente y dirección    │
//	│  Pie: litros totales + TOTAL GENERAL         │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/apelypenko/fueltrack-api/internal/application/report"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorAccent  = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.InvoicePDFGenerator = (*InvoiceGenerator)(nil)

// InvoiceGenerator implementa report.InvoicePDFGenerator usando Maroto v2.
type InvoiceGenerator struct{}

// NewInvoiceGenerator construye el generador.
func NewInvoiceGenerator() *InvoiceGenerator { return &InvoiceGenerator{} }

// RenderClientInvoice genera el invoice vertical de una cuenta.
func (g *InvoiceGenerator) RenderClientInvoice(
	client *entity.Client,
	rows []report.ReportRow,
	totals report.ReportTotals,
	labels report.Labels,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(labels.InvoiceTitle, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(invoiceHeaderRow(client, labels, generatedAt))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(invoiceTableHeader(labels))
	for _, r := range invoiceDetailRows(rows) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(grandTotalRow(labels, totals, 9))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

// RenderConsolidated genera el reporte apaisado multi-cuenta.
func (g *InvoiceGenerator) RenderConsolidated(
	scope *entity.Client,
	rows []report.ReportRow,
	totals report.ReportTotals,
	labels report.Labels,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(labels.ConsolidatedTitle, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(consolidatedHeaderRow(scope, labels, generatedAt))
	m.AddRows(line.NewRow(2, props.Line{Color: colorAccent, Thickness: 0.5}))
	m.AddRows(consolidatedTableHeader(labels))
	for _, r := range consolidatedDetailRows(rows, labels) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorAccent, Thickness: 0.3}))
	m.AddRows(consolidatedTotalsRow(labels, totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar consolidado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del invoice de cuenta ──────────────────────────────────────────

func invoiceHeaderRow(client *entity.Client, labels report.Labels, generatedAt time.Time) core.Row {
	addr := client.Address
	if addr == "" {
		addr = "—"
	}
	return row.New(24).Add(
		col.New(8).Add(
			text.New(labels.InvoiceTitle, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(labels.ClientID+": "+client.UniqueID, props.Text{Size: 9, Top: 10, Color: colorGray}),
			text.New(labels.ClientName+": "+client.Name, props.Text{Size: 9, Top: 15, Color: colorGray}),
			text.New(labels.Address+": "+addr, props.Text{Size: 9, Top: 20, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(labels.InvoiceDate+": "+generatedAt.Format("2006-01-02"), props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func invoiceTableHeader(labels report.Labels) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h(labels.Date, 2, align.Left),
		h(labels.Card, 2, align.Left),
		h(labels.Station, 3, align.Left),
		h(labels.FuelType, 1, align.Center),
		h(labels.Liters, 1, align.Right),
		h(labels.PricePerLiter, 1, align.Right),
		h(labels.Total+" ("+labels.Currency+")", 2, align.Right),
	)
}

func invoiceDetailRows(rows []report.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(9).Add(
			col.New(2).Add(text.New(r.Date, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.Card, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(
				text.New(r.Station, props.Text{Size: 8, Top: 1}),
				text.New(r.Address, props.Text{Size: 6, Top: 5, Color: colorGray}),
			),
			col.New(1).Add(text.New(r.FuelType, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(r.Liters.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(r.SellPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(r.LineTotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func grandTotalRow(labels report.Labels, totals report.ReportTotals, height float64) core.Row {
	return row.New(height).Add(
		col.New(9).Add(text.New(labels.GrandTotal+":", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New(totals.GrandTotal.StringFixed(2)+" "+labels.Currency, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

// ── Secciones del consolidado ────────────────────────────────────────────────

func consolidatedHeaderRow(scope *entity.Client, labels report.Labels, generatedAt time.Time) core.Row {
	scopeText := labels.Scope + ": " + labels.AllClients
	if scope != nil {
		scopeText = labels.Client + ": " + scope.Name + " (" + scope.UniqueID + ")"
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(labels.ConsolidatedTitle, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorAccent, Top: 1,
			}),
			text.New(scopeText, props.Text{Size: 9, Top: 11, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(labels.ReportGenerated+": "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func consolidatedTableHeader(labels report.Labels) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorAccent, Top: 2,
		}))
	}
	return row.New(8).Add(
		h(labels.Date, 1, align.Left),
		h(labels.Client, 2, align.Left),
		h(labels.Card, 1, align.Left),
		h(labels.Station, 2, align.Left),
		h(labels.Address, 3, align.Left),
		h(labels.Liters, 1, align.Right),
		h(labels.PricePerLiter, 1, align.Right),
		h(labels.Total, 1, align.Right),
	)
}

func consolidatedDetailRows(rows []report.ReportRow, labels report.Labels) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		clientName := r.ClientName
		if clientName == "" {
			clientName = labels.ManualEntry
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(r.Date, props.Text{Size: 7, Top: 1})),
			col.New(2).Add(text.New(clientName, props.Text{Size: 7, Top: 1})),
			col.New(1).Add(text.New(r.Card, props.Text{Size: 7, Top: 1})),
			col.New(2).Add(text.New(r.Station, props.Text{Size: 7, Top: 1})),
			col.New(3).Add(text.New(r.Address, props.Text{Size: 7, Top: 1})),
			col.New(1).Add(text.New(r.Liters.StringFixed(2), props.Text{Size: 7, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(r.SellPrice.StringFixed(2), props.Text{Size: 7, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(r.LineTotal.StringFixed(2), props.Text{Size: 7, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func consolidatedTotalsRow(labels report.Labels, totals report.ReportTotals) core.Row {
	return row.New(9).Add(
		col.New(6).Add(text.New(labels.GrandTotal+":", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New(totals.Liters.StringFixed(2)+" L", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New(totals.GrandTotal.StringFixed(2)+" "+labels.Currency, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorAccent,
		})),
	)
}
