package importing

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/importer"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/memory"
)

// lectorFijo devuelve filas prearmadas o falla de plano, como un archivo corrupto.
type lectorFijo struct {
	rows []importer.Row
	fail bool
}

func (l *lectorFijo) Rows(string, io.Reader) ([]importer.Row, error) {
	if l.fail {
		return nil, fmt.Errorf("archivo ilegible")
	}
	return l.rows, nil
}

func TestImportTransactions_ResuelveTarjetasContraCuentas(t *testing.T) {
	store := memory.NewSnapshotStore()
	require.NoError(t, store.ReplaceClients([]entity.Client{
		{ID: "cl-A", Name: "Transporte Andino", FuelCardNumbers: []string{"C1", "C2"}},
	}))
	uc := NewImportUseCase(store, &lectorFijo{rows: []importer.Row{
		{"Qty": "15,5", "Price": "42.10", "card": "C2"},
		{"Qty": "8", "Price": "40.00", "card": "C9"},
	}})

	got, err := uc.ImportTransactions("lote.xlsx", strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, 2, got.Imported)
	txs, _ := store.LoadTransactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "cl-A", txs[0].ClientID)
	assert.True(t, txs[0].Liters.Equal(decimal.NewFromFloat(15.5)))
	assert.Equal(t, entity.UnassignedClientID, txs[1].ClientID, "la tarjeta sin dueño no aborta la fila")
}

func TestImportTransactions_ArchivoIlegibleNoMutaNada(t *testing.T) {
	store := memory.NewSnapshotStore()
	require.NoError(t, store.ReplaceTransactions([]entity.FuelTransaction{{ID: "previa"}}))
	uc := NewImportUseCase(store, &lectorFijo{fail: true})

	_, err := uc.ImportTransactions("roto.xlsx", strings.NewReader(""))

	assert.ErrorIs(t, err, domain.ErrImportParse)
	txs, _ := store.LoadTransactions()
	assert.Len(t, txs, 1, "la importación abortada deja el libro mayor intacto")
}

func TestImportClients_AnexaSinPisarExistentes(t *testing.T) {
	store := memory.NewSnapshotStore()
	require.NoError(t, store.ReplaceClients([]entity.Client{{ID: "cl-A", Name: "Previo"}}))
	uc := NewImportUseCase(store, &lectorFijo{rows: []importer.Row{
		{"ID": "CLI-7", "Name": "Agro Trans", "Cards": "K1,K2", "Margin": "0,25"},
	}})

	got, err := uc.ImportClients("cuentas.xlsx", strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, 1, got.Imported)
	clients, _ := store.LoadClients()
	require.Len(t, clients, 2)
	assert.Equal(t, "Previo", clients[0].Name)
	assert.Equal(t, "Agro Trans", clients[1].Name)
	assert.True(t, clients[1].MarginPerLiter.Equal(decimal.NewFromFloat(0.25)))
}
