package importer

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// resolverFijo devuelve un resolver con reloj e identidad deterministas.
func resolverFijo() *Resolver {
	n := 0
	return &Resolver{
		Now: func() time.Time {
			return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		},
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%04d-xxxx", n)
		},
	}
}

func clientesConTarjetas() []entity.Client {
	return []entity.Client{
		{ID: "cl-A", Name: "Transporte Andino", FuelCardNumbers: []string{"C1", "C2"}, MarginPerLiter: decimal.NewFromFloat(0.30)},
		{ID: "cl-B", Name: "Logística del Sur", FuelCardNumbers: []string{"C3"}, MarginPerLiter: decimal.NewFromFloat(0.15)},
	}
}

func TestResolveTransaction_AliasesYComaDecimal(t *testing.T) {
	// Fila con alias cortos y coma como separador decimal.
	row := Row{"Qty": "15,5", "Price": "42.10", "card": "C2"}

	got := resolverFijo().ResolveTransaction(row, clientesConTarjetas())

	assert.True(t, got.Liters.Equal(decimal.NewFromFloat(15.5)), "litros: esperado 15.5, obtenido %s", got.Liters)
	assert.True(t, got.CostPerLiter.Equal(decimal.NewFromFloat(42.10)), "costo: esperado 42.10, obtenido %s", got.CostPerLiter)
	assert.Equal(t, "cl-A", got.ClientID, "la tarjeta C2 pertenece al primer cliente")
	assert.Equal(t, "C2", got.FuelCardNumber)
}

func TestResolveTransaction_EncabezadosConMayusculasYEspacios(t *testing.T) {
	row := Row{"  CARD NUMBER ": "C3", "Station Name": "Shell Sur", "LITERS": "20"}

	got := resolverFijo().ResolveTransaction(row, clientesConTarjetas())

	assert.Equal(t, "cl-B", got.ClientID)
	assert.Equal(t, "Shell Sur", got.StationName)
	assert.True(t, got.Liters.Equal(decimal.NewFromInt(20)))
}

func TestResolveTransaction_AliasesUcranianos(t *testing.T) {
	row := Row{"Картка": "C1", "Літри": "30", "Ціна": "39,90", "АЗС": "ОККО Центр"}

	got := resolverFijo().ResolveTransaction(row, clientesConTarjetas())

	assert.Equal(t, "cl-A", got.ClientID)
	assert.True(t, got.Liters.Equal(decimal.NewFromInt(30)))
	assert.True(t, got.CostPerLiter.Equal(decimal.NewFromFloat(39.90)))
	assert.Equal(t, "ОККО Центр", got.StationName)
}

func TestResolveTransaction_TarjetaSinDuenoQuedaSinAsignar(t *testing.T) {
	row := Row{"card": "C9", "Liters": "10"}

	got := resolverFijo().ResolveTransaction(row, clientesConTarjetas())

	assert.Equal(t, entity.UnassignedClientID, got.ClientID, "una tarjeta desconocida no aborta la fila, queda sin asignar")
	assert.Equal(t, "C9", got.FuelCardNumber)
}

func TestResolveTransaction_DefaultsDeCampo(t *testing.T) {
	got := resolverFijo().ResolveTransaction(Row{}, clientesConTarjetas())

	assert.Equal(t, "2024-03-15", got.Date, "sin fecha en la fila se usa la fecha actual")
	assert.Equal(t, "12:00", got.Time)
	assert.Equal(t, "Diesel", got.FuelType)
	assert.Equal(t, "Generic Station", got.StationName)
	assert.Equal(t, "Unknown Address", got.StationAddress)
	assert.True(t, got.Liters.IsZero())
	assert.True(t, got.ShowCostToClient)
	assert.NotEmpty(t, got.ID)
}

func TestResolveTransaction_FechaInvalidaCaeAlDia(t *testing.T) {
	row := Row{"Date": "15/03/2024", "card": "C1"}

	got := resolverFijo().ResolveTransaction(row, clientesConTarjetas())

	assert.Equal(t, "2024-03-15", got.Date, "una fecha con formato ajeno coerciona a la fecha actual")
}

func TestResolveClient_FilaCompleta(t *testing.T) {
	row := Row{
		"ID":     "CLI-7",
		"Name":   "Agro Trans",
		"Email":  "flota@agrotrans.ua",
		"Cards":  "K1, K2 ,  K3 ,",
		"Margin": "0,25",
	}

	got := resolverFijo().ResolveClient(row)

	assert.Equal(t, "CLI-7", got.UniqueID)
	assert.Equal(t, "Agro Trans", got.Name)
	assert.Equal(t, []string{"K1", "K2", "K3"}, got.FuelCardNumbers, "las tarjetas se separan por coma, recortadas y sin vacíos")
	assert.True(t, got.MarginPerLiter.Equal(decimal.NewFromFloat(0.25)))
}

func TestResolveClient_Defaults(t *testing.T) {
	got := resolverFijo().ResolveClient(Row{})

	assert.Equal(t, "Unknown Client", got.Name)
	assert.Equal(t, "no-email@example.com", got.Email)
	assert.True(t, got.MarginPerLiter.Equal(decimal.NewFromFloat(0.10)), "margen default 0.10")
	require.NotEmpty(t, got.UniqueID)
	assert.Contains(t, got.UniqueID, "CLI-", "el uniqueId generado lleva el prefijo CLI-")
	assert.Empty(t, got.FuelCardNumbers)
}

func TestCoerceDecimal(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
		salida  string
	}{
		{"coma decimal", "15,5", "15.5"},
		{"punto decimal", "42.10", "42.1"},
		{"con moneda y espacios", "UAH 1250.75", "1250.75"},
		{"negativo", "-3,5", "-3.5"},
		{"basura", "n/a", "0"},
		{"vacío", "", "0"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := CoerceDecimal(c.entrada)
			esperado, err := decimal.NewFromString(c.salida)
			require.NoError(t, err)
			assert.True(t, got.Equal(esperado), "entrada %q: esperado %s, obtenido %s", c.entrada, esperado, got)
		})
	}
}
