// Package cards implementa la autorización de tarjetas: una transacción solo
// puede registrarse contra una tarjeta del cliente seleccionado. La regla se
// aplica al crear y al editar; nunca se reevalúa después, así que una
// transacción existente puede referenciar tarjetas ya dadas de baja sin que
// eso sea un estado de error.
package cards

import (
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// ValidateAssignment verifica que la tarjeta pertenezca al cliente destino.
//
//   - Transacciones sin asignar (sentinela) se aceptan con cualquier tarjeta,
//     incluido el marcador reservado "manual".
//   - Cliente no resoluble (referencia colgante): se acepta, no hay contra
//     qué validar.
//   - Cliente resoluble y tarjeta ausente de su lista: ErrCardMismatch.
//     Comparación exacta, sensible a mayúsculas.
func ValidateAssignment(clientID, fuelCardNumber string, clients []entity.Client) error {
	if clientID == "" || clientID == entity.UnassignedClientID {
		return nil
	}
	client := entity.FindClientByID(clients, clientID)
	if client == nil {
		return nil
	}
	if !client.HasCard(fuelCardNumber) {
		return domain.ErrCardMismatch
	}
	return nil
}
