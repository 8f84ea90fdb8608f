package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

func fixtureClients() []entity.Client {
	return []entity.Client{
		{ID: "cl-1", Name: "Transporte Andino", FuelCardNumbers: []string{"C1", "C2"}, MarginPerLiter: decimal.NewFromFloat(0.30)},
		{ID: "cl-2", Name: "Logística del Sur", FuelCardNumbers: []string{"C3"}, MarginPerLiter: decimal.NewFromFloat(0.15)},
	}
}

func fixtureTxs() []entity.FuelTransaction {
	return []entity.FuelTransaction{
		{ID: "t1", ClientID: "cl-1", FuelCardNumber: "C1", Date: "2024-01-05", Time: "08:00", StationName: "Estación Norte", StationAddress: "Av. Central 100"},
		{ID: "t2", ClientID: "cl-2", FuelCardNumber: "C3", Date: "2024-01-05", Time: "14:30", StationName: "Shell Sur", StationAddress: "Ruta 9 km 12"},
		{ID: "t3", ClientID: "cl-1", FuelCardNumber: "C2", Date: "2024-01-04", Time: "22:15", StationName: "Estación Norte", StationAddress: "Av. Central 100"},
		{ID: "t4", ClientID: entity.UnassignedClientID, FuelCardNumber: "C9", Date: "2024-01-06", Time: "09:00", StationName: "YPF Centro", StationAddress: "Calle Falsa 123"},
	}
}

func TestQuery_SinFiltrosDevuelveTodoOrdenado(t *testing.T) {
	got := Query(fixtureTxs(), fixtureClients(), Filter{})

	require.Len(t, got, 4, "sin filtros deben volver todas las transacciones")
	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []string{"t4", "t2", "t1", "t3"}, ids, "orden esperado: fecha desc, hora desc")
}

func TestQuery_FiltroPorCliente(t *testing.T) {
	got := Query(fixtureTxs(), fixtureClients(), Filter{ClientID: "cl-1"})

	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t3", got[1].ID)
}

func TestQuery_FiltroAllEquivaleASinFiltro(t *testing.T) {
	todo := Query(fixtureTxs(), fixtureClients(), Filter{})
	all := Query(fixtureTxs(), fixtureClients(), Filter{ClientID: AllClients})

	assert.Equal(t, todo, all, "el valor 'all' no debe filtrar nada")
}

func TestQuery_TextoBuscaEnNombreDeClienteResuelto(t *testing.T) {
	got := Query(fixtureTxs(), fixtureClients(), Filter{Text: "andino"})

	require.Len(t, got, 2, "debe matchear por nombre del cliente dueño de la transacción")
	for _, tx := range got {
		assert.Equal(t, "cl-1", tx.ClientID)
	}
}

func TestQuery_TextoCaseInsensitiveSobreEstacion(t *testing.T) {
	got := Query(fixtureTxs(), fixtureClients(), Filter{Text: "SHELL"})

	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
}

func TestQuery_TextoSobreTarjeta(t *testing.T) {
	got := Query(fixtureTxs(), fixtureClients(), Filter{Text: "c9"})

	require.Len(t, got, 1)
	assert.Equal(t, "t4", got[0].ID)
}

func TestQuery_RangoDeUnSoloDiaIncluyeTodoElDia(t *testing.T) {
	// Límites iguales: el rango cubre el día completo, de 00:00 a 23:59.
	got := Query(fixtureTxs(), fixtureClients(), Filter{StartDate: "2024-01-05", EndDate: "2024-01-05"})

	require.Len(t, got, 2, "ambas transacciones del día 5 deben entrar al rango")
	assert.Equal(t, "t2", got[0].ID, "la de las 14:30 va primero")
	assert.Equal(t, "t1", got[1].ID)
}

func TestQuery_LimitesAbiertos(t *testing.T) {
	desde := Query(fixtureTxs(), fixtureClients(), Filter{StartDate: "2024-01-05"})
	require.Len(t, desde, 3, "sin límite superior entran los días 5 y 6")

	hasta := Query(fixtureTxs(), fixtureClients(), Filter{EndDate: "2024-01-04"})
	require.Len(t, hasta, 1)
	assert.Equal(t, "t3", hasta[0].ID)
}

func TestQuery_FechaInvalidaQuedaFueraDelRango(t *testing.T) {
	txs := append(fixtureTxs(), entity.FuelTransaction{ID: "t5", ClientID: "cl-1", Date: "no-es-fecha", Time: "10:00"})

	conRango := Query(txs, fixtureClients(), Filter{StartDate: "2024-01-01", EndDate: "2024-12-31"})
	for _, tx := range conRango {
		assert.NotEqual(t, "t5", tx.ID, "una fecha no parseable no puede pertenecer a un rango")
	}

	sinRango := Query(txs, fixtureClients(), Filter{})
	assert.Len(t, sinRango, 5, "sin rango activo la transacción defectuosa sigue visible")
}

func TestQuery_OrdenEstableConFechaYHoraIguales(t *testing.T) {
	txs := []entity.FuelTransaction{
		{ID: "a", ClientID: "cl-1", Date: "2024-02-01", Time: "10:00"},
		{ID: "b", ClientID: "cl-1", Date: "2024-02-01", Time: "10:00"},
		{ID: "c", ClientID: "cl-1", Date: "2024-02-01", Time: "10:00"},
	}

	got := Query(txs, fixtureClients(), Filter{})

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID, "con empate total se preserva el orden de inserción")
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestQuery_Idempotente(t *testing.T) {
	filtro := Filter{ClientID: "cl-1", Text: "norte", StartDate: "2024-01-01", EndDate: "2024-01-31"}
	clients := fixtureClients()

	una := Query(fixtureTxs(), clients, filtro)
	dos := Query(una, clients, filtro)

	require.NotEmpty(t, una, "el filtro combinado debe dejar al menos una transacción")
	assert.Equal(t, una, dos, "re-filtrar un resultado con el mismo filtro devuelve la misma secuencia")
}

func TestQuery_NoMutaLaEntrada(t *testing.T) {
	txs := fixtureTxs()
	original := make([]entity.FuelTransaction, len(txs))
	copy(original, txs)

	_ = Query(txs, fixtureClients(), Filter{ClientID: "cl-2", Text: "sur"})

	assert.Equal(t, original, txs, "la consulta no debe reordenar ni modificar la colección fuente")
}
