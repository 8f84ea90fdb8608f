package report

import (
	"fmt"
	"time"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/fleet"
	"github.com/apelypenko/fueltrack-api/internal/domain/ledger"
	"github.com/apelypenko/fueltrack-api/internal/domain/pricing"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// ExportUseCase exporta el libro mayor filtrado a XLSX y PDF. Los nombres de
// archivo siguen el patrón histórico de los reportes de flota:
//
//	FuelTransactions_yyyymmdd_HHMM.xlsx
//	Invoice_<uniqueId>_<yyyy-mm-dd>.pdf
//	Consolidated_Invoice_yyyymmdd_HHMM.pdf
type ExportUseCase struct {
	store    repository.SnapshotStore
	workbook WorkbookWriter
	pdfs     InvoicePDFGenerator
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(store repository.SnapshotStore, workbook WorkbookWriter, pdfs InvoicePDFGenerator) *ExportUseCase {
	return &ExportUseCase{store: store, workbook: workbook, pdfs: pdfs, now: time.Now}
}

// TransactionsXLSX exporta el resultado de una consulta del libro mayor.
// Sin canSeeCost la columna de costo de compra se omite de la planilla.
func (uc *ExportUseCase) TransactionsXLSX(q dto.LedgerQuery, canSeeCost bool) ([]byte, string, error) {
	txs, clients, err := uc.loadAll()
	if err != nil {
		return nil, "", err
	}
	matched := ledger.Query(txs, clients, ledger.Filter{
		ClientID:  q.ClientID,
		Text:      q.Search,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})

	rows := uc.buildRows(matched, clients, canSeeCost)
	data, err := uc.workbook.WriteTransactions(rows, canSeeCost)
	if err != nil {
		return nil, "", fmt.Errorf("exportar planilla: %w", err)
	}
	filename := "FuelTransactions_" + uc.now().Format("20060102_1504") + ".xlsx"
	return data, filename, nil
}

// ClientInvoicePDF invoice de una sola cuenta con todas sus transacciones.
// El costo de compra de cada línea viaja solo si la transacción lo habilita
// para el cliente (showCostToClient).
func (uc *ExportUseCase) ClientInvoicePDF(clientID, lang string) ([]byte, string, error) {
	txs, clients, err := uc.loadAll()
	if err != nil {
		return nil, "", err
	}
	client := entity.FindClientByID(clients, clientID)
	if client == nil {
		return nil, "", domain.ErrNotFound
	}
	matched := ledger.Query(txs, clients, ledger.Filter{ClientID: clientID})

	rows := make([]ReportRow, 0, len(matched))
	for i := range matched {
		row := uc.buildRow(&matched[i], clients, matched[i].ShowCostToClient)
		rows = append(rows, row)
	}
	totals := toReportTotals(fleet.Aggregate(matched, clients))

	data, err := uc.pdfs.RenderClientInvoice(client, rows, totals, LabelsFor(lang), uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("generar invoice: %w", err)
	}
	filename := "Invoice_" + client.UniqueID + "_" + uc.now().Format("2006-01-02") + ".pdf"
	return data, filename, nil
}

// ConsolidatedPDF reporte apaisado del libro mayor filtrado. Un client_id
// concreto en la consulta acota el alcance a esa cuenta.
func (uc *ExportUseCase) ConsolidatedPDF(q dto.LedgerQuery, canSeeCost bool, lang string) ([]byte, string, error) {
	txs, clients, err := uc.loadAll()
	if err != nil {
		return nil, "", err
	}
	matched := ledger.Query(txs, clients, ledger.Filter{
		ClientID:  q.ClientID,
		Text:      q.Search,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})

	var scope *entity.Client
	if q.ClientID != "" && q.ClientID != ledger.AllClients {
		scope = entity.FindClientByID(clients, q.ClientID)
	}
	rows := uc.buildRows(matched, clients, canSeeCost)
	totals := toReportTotals(fleet.Aggregate(matched, clients))

	data, err := uc.pdfs.RenderConsolidated(scope, rows, totals, LabelsFor(lang), uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("generar reporte consolidado: %w", err)
	}
	filename := "Consolidated_Invoice_" + uc.now().Format("20060102_1504") + ".pdf"
	return data, filename, nil
}

func (uc *ExportUseCase) loadAll() ([]entity.FuelTransaction, []entity.Client, error) {
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, nil, err
	}
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, nil, err
	}
	return txs, clients, nil
}

func (uc *ExportUseCase) buildRows(txs []entity.FuelTransaction, clients []entity.Client, includeCost bool) []ReportRow {
	rows := make([]ReportRow, 0, len(txs))
	for i := range txs {
		rows = append(rows, uc.buildRow(&txs[i], clients, includeCost))
	}
	return rows
}

func (uc *ExportUseCase) buildRow(tx *entity.FuelTransaction, clients []entity.Client, includeCost bool) ReportRow {
	client := entity.FindClientByID(clients, tx.ClientID)
	row := ReportRow{
		Date:      tx.Date,
		Time:      tx.Time,
		Card:      tx.FuelCardNumber,
		Station:   tx.StationName,
		Address:   tx.StationAddress,
		FuelType:  tx.FuelType,
		Liters:    tx.Liters,
		SellPrice: pricing.SellPrice(tx, client),
		LineTotal: pricing.LineTotal(tx, client),
	}
	if client != nil {
		row.ClientName = client.Name
	}
	if includeCost {
		cost := tx.CostPerLiter
		row.BuyPrice = &cost
	}
	return row
}

func toReportTotals(t fleet.Totals) ReportTotals {
	return ReportTotals{Liters: t.Liters, GrandTotal: t.Revenue}
}
