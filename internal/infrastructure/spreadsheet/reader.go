// Package spreadsheet lee y escribe planillas tabulares: XLSX vía excelize
// y CSV con el encoding/csv estándar. La primera fila es siempre la de
// encabezados; el matching de alias es problema del dominio, acá solo se
// materializan los mapas encabezado → celda.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/apelypenko/fueltrack-api/internal/domain/importer"
)

// Reader lector de planillas. Decide el formato por extensión: .csv va al
// parser CSV, todo lo demás se intenta como libro XLSX.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

// Rows devuelve las filas de datos de la primera hoja. Celdas de más, de
// menos o vacías no son error: la fila se materializa con lo que haya.
func (rd *Reader) Rows(filename string, r io.Reader) ([]importer.Row, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return rd.csvRows(r)
	}
	return rd.xlsxRows(r)
}

func (rd *Reader) xlsxRows(r io.Reader) ([]importer.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheet, err)
	}
	return toRows(raw), nil
}

func (rd *Reader) csvRows(r io.Reader) ([]importer.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Filas con distinta cantidad de campos se toleran, igual que en XLSX.
	reader.FieldsPerRecord = -1

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	return toRows(raw), nil
}

// toRows convierte la matriz cruda en mapas encabezado → valor usando la
// primera fila como encabezados.
func toRows(raw [][]string) []importer.Row {
	if len(raw) < 2 {
		return []importer.Row{}
	}
	headers := raw[0]
	rows := make([]importer.Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		if emptyRow(cells) {
			continue
		}
		row := make(importer.Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
