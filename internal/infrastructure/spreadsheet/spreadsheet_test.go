package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apelypenko/fueltrack-api/internal/application/report"
)

func TestReader_CSV(t *testing.T) {
	csv := "Qty,Price,card\n15.5,42.10,C2\n8,40.00,C9\n"

	rows, err := NewReader().Rows("lote.csv", strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "15.5", rows[0]["Qty"])
	assert.Equal(t, "C9", rows[1]["card"])
}

func TestReader_CSVFilasVaciasYDesparejas(t *testing.T) {
	csv := "Date,card,Liters\n2024-01-05,C1\n\n,,\n2024-01-06,C2,20\n"

	rows, err := NewReader().Rows("lote.csv", strings.NewReader(csv))

	require.NoError(t, err)
	require.Len(t, rows, 2, "las filas vacías se descartan, las desparejas se completan")
	assert.Equal(t, "", rows[0]["Liters"], "celda faltante materializa vacío")
	assert.Equal(t, "20", rows[1]["Liters"])
}

func TestReader_ArchivoIlegible(t *testing.T) {
	_, err := NewReader().Rows("roto.xlsx", strings.NewReader("esto no es un zip"))

	assert.Error(t, err, "un XLSX corrupto debe fallar completo, nunca devolver filas parciales")
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func filaExport(buy string) report.ReportRow {
	row := report.ReportRow{
		Date: "2024-01-05", Time: "08:00", ClientName: "Transporte Andino",
		Card: "C1", Station: "Estación Norte", Address: "Av. Central 100",
		FuelType: "Diesel", Liters: dec("10"),
		SellPrice: dec("40.30"), LineTotal: dec("403.00"),
	}
	if buy != "" {
		b := dec(buy)
		row.BuyPrice = &b
	}
	return row
}

func TestWriter_RoundTripConCosto(t *testing.T) {
	data, err := NewWriter().WriteTransactions([]report.ReportRow{filaExport("40.00")}, true)
	require.NoError(t, err)

	rows, err := NewReader().Rows("export.xlsx", bytes.NewReader(data))

	require.NoError(t, err, "lo que escribe el writer debe poder releerse")
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-01-05", rows[0]["Date"])
	assert.Equal(t, "Transporte Andino", rows[0]["Client"])
	assert.Contains(t, rows[0], "Buy Price (UAH)")
	assert.Contains(t, rows[0], "Total (UAH)")
}

func TestWriter_SinPermisoNoHayColumnaDeCompra(t *testing.T) {
	data, err := NewWriter().WriteTransactions([]report.ReportRow{filaExport("")}, false)
	require.NoError(t, err)

	rows, err := NewReader().Rows("export.xlsx", bytes.NewReader(data))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotContains(t, rows[0], "Buy Price (UAH)", "la columna entera se omite, no solo el valor")
	assert.Contains(t, rows[0], "Sell Price (UAH)")
}

func TestWriter_SinClienteEscribeManual(t *testing.T) {
	row := filaExport("")
	row.ClientName = ""
	data, err := NewWriter().WriteTransactions([]report.ReportRow{row}, false)
	require.NoError(t, err)

	rows, err := NewReader().Rows("export.xlsx", bytes.NewReader(data))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Manual", rows[0]["Client"])
}
