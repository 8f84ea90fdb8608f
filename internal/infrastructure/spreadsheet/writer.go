package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/report"
)

var _ report.WorkbookWriter = (*Writer)(nil)

// Writer escribe el export XLSX del libro mayor usando excelize.
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

const exportSheet = "Transactions"

// WriteTransactions una hoja con encabezados legibles y una fila por
// transacción. La columna de costo de compra existe solo con includeCost.
func (w *Writer) WriteTransactions(rows []report.ReportRow, includeCost bool) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("borrar hoja default: %w", err)
	}

	headers := []string{"Date", "Time", "Client", "Card Number", "Station", "Address", "Fuel Type", "Liters"}
	if includeCost {
		headers = append(headers, "Buy Price (UAH)")
	}
	headers = append(headers, "Sell Price (UAH)", "Total (UAH)")
	if err := w.writeRow(f, 1, toAny(headers)); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := []any{row.Date, row.Time, w.clientName(row), row.Card, row.Station, row.Address, row.FuelType, row.Liters.InexactFloat64()}
		if includeCost {
			buy := 0.0
			if row.BuyPrice != nil {
				buy = row.BuyPrice.InexactFloat64()
			}
			cells = append(cells, buy)
		}
		cells = append(cells, row.SellPrice.InexactFloat64(), row.LineTotal.InexactFloat64())
		if err := w.writeRow(f, i+2, cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) writeRow(f *excelize.File, rowNum int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, cell, &cells); err != nil {
		return fmt.Errorf("escribir fila %d: %w", rowNum, err)
	}
	return nil
}

func (w *Writer) clientName(row report.ReportRow) string {
	if row.ClientName == "" {
		return "Manual"
	}
	return row.ClientName
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
