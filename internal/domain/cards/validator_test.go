package cards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/cards"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

func clientsFixture() []entity.Client {
	return []entity.Client{
		{ID: "A", Name: "Global Logistics", FuelCardNumbers: []string{"C1", "C2"}},
		{ID: "B", Name: "Dnipro Cargo", FuelCardNumbers: []string{"C3"}},
	}
}

func TestValidateAssignment_TarjetaDelCliente(t *testing.T) {
	err := cards.ValidateAssignment("A", "C1", clientsFixture())
	assert.NoError(t, err)
}

// Tarjeta ajena al cliente seleccionado → ErrCardMismatch, la operación
// debe abortarse sin mutar estado.
func TestValidateAssignment_TarjetaAjena(t *testing.T) {
	err := cards.ValidateAssignment("A", "C9", clientsFixture())
	assert.ErrorIs(t, err, domain.ErrCardMismatch)
}

func TestValidateAssignment_TarjetaDeOtroCliente(t *testing.T) {
	// C3 existe, pero pertenece a B, no a A.
	err := cards.ValidateAssignment("A", "C3", clientsFixture())
	assert.ErrorIs(t, err, domain.ErrCardMismatch)
}

func TestValidateAssignment_CaseSensitive(t *testing.T) {
	err := cards.ValidateAssignment("A", "c1", clientsFixture())
	assert.ErrorIs(t, err, domain.ErrCardMismatch,
		"la comparación de tarjetas es sensible a mayúsculas")
}

// Transacciones sin asignar omiten la validación por completo.
func TestValidateAssignment_SinAsignarAceptaCualquierTarjeta(t *testing.T) {
	assert.NoError(t, cards.ValidateAssignment(entity.UnassignedClientID, "C9", clientsFixture()))
	assert.NoError(t, cards.ValidateAssignment("", entity.ManualCardMarker, clientsFixture()))
}

// Referencia colgante (cliente eliminado): se tolera, no hay contra qué validar.
func TestValidateAssignment_ClienteNoResoluble(t *testing.T) {
	assert.NoError(t, cards.ValidateAssignment("ghost", "C9", clientsFixture()))
}
