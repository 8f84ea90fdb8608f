// Package importing orquesta la importación masiva de planillas: lectura
// tabular, resolución de filas y anexado al snapshot.
package importing

import (
	"fmt"
	"io"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/importer"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// SheetReader puerto de lectura tabular: devuelve las filas de la primera
// hoja como mapas encabezado → valor. Un archivo ilegible es el único fallo.
type SheetReader interface {
	Rows(filename string, r io.Reader) ([]importer.Row, error)
}

// ImportUseCase importación de clientes y transacciones desde planillas.
// El camino masivo es permisivo: no corre la autorización de tarjetas ni los
// invariantes de unicidad, y cada fila se resuelve best-effort. Solo un
// archivo ilegible aborta la importación completa, sin mutación parcial.
type ImportUseCase struct {
	store    repository.SnapshotStore
	reader   SheetReader
	resolver *importer.Resolver
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(store repository.SnapshotStore, reader SheetReader) *ImportUseCase {
	return &ImportUseCase{store: store, reader: reader, resolver: importer.NewResolver()}
}

// ImportClients anexa un cliente por fila de la planilla.
func (uc *ImportUseCase) ImportClients(filename string, r io.Reader) (*dto.ImportResult, error) {
	rows, err := uc.reader.Rows(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrImportParse, err)
	}
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}

	imported := make([]entity.Client, 0, len(rows))
	for _, row := range rows {
		imported = append(imported, uc.resolver.ResolveClient(row))
	}
	if err := uc.store.ReplaceClients(append(clients, imported...)); err != nil {
		return nil, err
	}
	return &dto.ImportResult{Imported: len(imported), Kind: "clients"}, nil
}

// ImportTransactions anexa una transacción por fila. La tarjeta de cada fila
// se resuelve contra las cuentas vigentes; sin dueño, la transacción queda
// sin asignar en lugar de fallar.
func (uc *ImportUseCase) ImportTransactions(filename string, r io.Reader) (*dto.ImportResult, error) {
	rows, err := uc.reader.Rows(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrImportParse, err)
	}
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, err
	}

	imported := make([]entity.FuelTransaction, 0, len(rows))
	for _, row := range rows {
		imported = append(imported, uc.resolver.ResolveTransaction(row, clients))
	}
	if err := uc.store.ReplaceTransactions(append(txs, imported...)); err != nil {
		return nil, err
	}
	return &dto.ImportResult{Imported: len(imported), Kind: "transactions"}, nil
}
