package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/memory"
)

// enforcerEspia registra si el admin primario fue re-sembrado.
type enforcerEspia struct{ called bool }

func (e *enforcerEspia) EnsurePrimaryAdmin() error {
	e.called = true
	return nil
}

func nuevoBackupUseCase(t *testing.T) (*BackupUseCase, *memory.SnapshotStore, *enforcerEspia) {
	t.Helper()
	store := storeConDatos(t)
	espia := &enforcerEspia{}
	uc := NewBackupUseCase(store, espia)
	uc.now = func() time.Time { return time.Date(2024, 2, 1, 14, 30, 0, 0, time.UTC) }
	return uc, store, espia
}

func TestBackup_DocumentoCompleto(t *testing.T) {
	uc, _, _ := nuevoBackupUseCase(t)

	doc, filename, err := uc.Backup()

	require.NoError(t, err)
	assert.Equal(t, "FuelTrack_Backup_20240201_1430.json", filename)
	assert.Len(t, doc.Clients, 2)
	assert.Len(t, doc.Transactions, 2)
	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "2024-02-01T14:30:00Z", doc.ExportDate)
}

func TestRestore_ReemplazaWholesale(t *testing.T) {
	uc, store, espia := nuevoBackupUseCase(t)
	raw, err := json.Marshal(map[string]any{
		"clients": []entity.Client{
			{ID: "nuevo", UniqueID: "CLI-9", Name: "Restaurado", MarginPerLiter: decimal.NewFromFloat(0.20)},
		},
		"transactions": []entity.FuelTransaction{},
	})
	require.NoError(t, err)

	result, err := uc.Restore(raw, true)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Clients)
	assert.Equal(t, 0, result.Transactions)
	clients, _ := store.LoadClients()
	require.Len(t, clients, 1, "el restore reemplaza la colección completa, no mezcla")
	assert.Equal(t, "Restaurado", clients[0].Name)
	txs, _ := store.LoadTransactions()
	assert.Empty(t, txs)
	assert.True(t, espia.called, "tras reemplazar usuarios el admin primario se re-siembra")
}

func TestRestore_SinConfirmacionNoTocaNada(t *testing.T) {
	uc, store, _ := nuevoBackupUseCase(t)

	_, err := uc.Restore([]byte(`{"clients":[],"transactions":[]}`), false)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	clients, _ := store.LoadClients()
	assert.Len(t, clients, 2, "sin confirmación el estado queda intacto")
}

func TestRestore_FormatoInvalidoAntesDeMutar(t *testing.T) {
	uc, store, _ := nuevoBackupUseCase(t)

	casos := []struct {
		nombre string
		raw    string
	}{
		{"json roto", `{"clients": [`},
		{"falta clients", `{"transactions": []}`},
		{"falta transactions", `{"clients": []}`},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Restore([]byte(c.raw), true)

			assert.ErrorIs(t, err, domain.ErrRestoreFormat)
			clients, _ := store.LoadClients()
			assert.Len(t, clients, 2, "la validación corre completa antes de la primera escritura")
		})
	}
}

func TestRestore_UsuariosOpcionales(t *testing.T) {
	uc, store, _ := nuevoBackupUseCase(t)
	require.NoError(t, store.ReplaceUsers([]entity.AuthUser{{ID: "previo"}}))

	_, err := uc.Restore([]byte(`{"clients":[],"transactions":[]}`), true)

	require.NoError(t, err)
	users, _ := store.LoadUsers()
	assert.Len(t, users, 1, "un backup sin authorizedUsers conserva los usuarios vigentes")
}

func TestBackupRestore_RoundTrip(t *testing.T) {
	uc, store, _ := nuevoBackupUseCase(t)
	doc, _, err := uc.Backup()
	require.NoError(t, err)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceClients(nil))
	require.NoError(t, store.ReplaceTransactions(nil))

	result, err := uc.Restore(raw, true)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Clients)
	assert.Equal(t, 2, result.Transactions)
	clients, _ := store.LoadClients()
	assert.Len(t, clients, 2)
}
