package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/memory"
)

// armaEscenario deja una cuenta con tarjetas C1/C2 y margen 0.30 lista.
func armaEscenario(t *testing.T) (*TransactionUseCase, *memory.SnapshotStore, string) {
	t.Helper()
	store := memory.NewSnapshotStore()
	created, err := NewClientUseCase(store).Create(dto.CreateClientRequest{
		UniqueID:        "CLI-1",
		Name:            "Transporte Andino",
		FuelCardNumbers: []string{"C1", "C2"},
		MarginPerLiter:  decimal.NewFromFloat(0.30),
	})
	require.NoError(t, err)
	return NewTransactionUseCase(store), store, created.ID
}

func altaValida(clientID string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		ClientID:       clientID,
		FuelCardNumber: "C1",
		Date:           "2024-01-05",
		Time:           "08:00",
		StationName:    "Estación Norte",
		Liters:         decimal.NewFromInt(10),
		CostPerLiter:   decimal.NewFromFloat(40.00),
	}
}

func TestTransactionCreate_CalculaDerivados(t *testing.T) {
	uc, _, clientID := armaEscenario(t)

	got, err := uc.Create(altaValida(clientID), true)

	require.NoError(t, err)
	assert.True(t, got.SellPricePerLiter.Equal(decimal.NewFromFloat(40.30)), "precio de venta: esperado 40.30, obtenido %s", got.SellPricePerLiter)
	assert.True(t, got.LineTotal.Equal(decimal.NewFromFloat(403.00)), "total de línea: esperado 403.00, obtenido %s", got.LineTotal)
	require.NotNil(t, got.LineMargin)
	assert.True(t, got.LineMargin.Equal(decimal.NewFromFloat(3.00)))
	assert.Equal(t, "Transporte Andino", got.ClientName)
}

func TestTransactionCreate_TarjetaAjenaRechazada(t *testing.T) {
	uc, store, clientID := armaEscenario(t)

	in := altaValida(clientID)
	in.FuelCardNumber = "C9"
	_, err := uc.Create(in, true)

	assert.ErrorIs(t, err, domain.ErrCardMismatch)
	txs, _ := store.LoadTransactions()
	assert.Empty(t, txs, "la operación rechazada no agrega nada al libro mayor")
}

func TestTransactionCreate_SinAsignarAceptaCualquierTarjeta(t *testing.T) {
	uc, _, _ := armaEscenario(t)

	in := altaValida(entity.UnassignedClientID)
	in.FuelCardNumber = entity.ManualCardMarker
	got, err := uc.Create(in, true)

	require.NoError(t, err, "el centinela sin-asignar saltea la autorización de tarjeta")
	assert.True(t, got.SellPricePerLiter.Equal(decimal.NewFromFloat(40.00)), "sin cliente el precio de venta es el costo")
	require.NotNil(t, got.LineMargin)
	assert.True(t, got.LineMargin.IsZero())
}

func TestTransactionCreate_SinPermisoDeCostosOmiteCostoYMargen(t *testing.T) {
	uc, _, clientID := armaEscenario(t)

	got, err := uc.Create(altaValida(clientID), false)

	require.NoError(t, err)
	assert.Nil(t, got.CostPerLiter, "el costo de compra no viaja sin canSeeCost")
	assert.Nil(t, got.LineMargin)
	assert.True(t, got.LineTotal.Equal(decimal.NewFromFloat(403.00)), "el total a precio de venta sí viaja siempre")
}

func TestTransactionCreate_LitrosNoPositivos(t *testing.T) {
	uc, _, clientID := armaEscenario(t)

	in := altaValida(clientID)
	in.Liters = decimal.Zero
	_, err := uc.Create(in, true)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransactionUpdate_ReValidaTarjeta(t *testing.T) {
	uc, _, clientID := armaEscenario(t)
	created, err := uc.Create(altaValida(clientID), true)
	require.NoError(t, err)

	in := altaValida(clientID)
	in.FuelCardNumber = "C9"
	_, err = uc.Update(created.ID, in, true)

	assert.ErrorIs(t, err, domain.ErrCardMismatch, "la edición corre la misma autorización que el alta")
}

func TestTransactionUpdate_Basico(t *testing.T) {
	uc, _, clientID := armaEscenario(t)
	created, err := uc.Create(altaValida(clientID), true)
	require.NoError(t, err)

	in := altaValida(clientID)
	in.FuelCardNumber = "C2"
	in.Liters = decimal.NewFromInt(25)
	got, err := uc.Update(created.ID, in, true)

	require.NoError(t, err)
	assert.Equal(t, "C2", got.FuelCardNumber)
	assert.True(t, got.LineTotal.Equal(decimal.NewFromFloat(1007.50)), "25 L a 40.30: esperado 1007.50, obtenido %s", got.LineTotal)
}

func TestTransactionQuery_FiltraYOrdena(t *testing.T) {
	uc, _, clientID := armaEscenario(t)
	primera := altaValida(clientID)
	primera.Date = "2024-01-04"
	_, err := uc.Create(primera, true)
	require.NoError(t, err)
	segunda := altaValida(clientID)
	segunda.Date = "2024-01-06"
	_, err = uc.Create(segunda, true)
	require.NoError(t, err)

	got, err := uc.Query(dto.LedgerQuery{ClientID: clientID}, true)

	require.NoError(t, err)
	require.Equal(t, 2, got.Total)
	assert.Equal(t, "2024-01-06", got.Transactions[0].Date, "la más reciente primero")
}

func TestTransactionDelete(t *testing.T) {
	uc, store, clientID := armaEscenario(t)
	created, err := uc.Create(altaValida(clientID), true)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	txs, _ := store.LoadTransactions()
	assert.Empty(t, txs)
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
