package ports

import (
	"context"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/fleet"
)

// LLMService define el puerto de salida para los servicios de inteligencia
// artificial. Cualquier adaptador (Gemini, Anthropic, mock) debe implementar
// esta interfaz: la capa de aplicación solo conoce el contrato (DIP), no la
// implementación concreta.
type LLMService interface {
	// SummarizeFleetActivity genera un resumen en prosa de la actividad de
	// la flota a partir de los totales y una muestra acotada de
	// transacciones (el caller la limita, nunca el ledger completo).
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas
	// externas.
	SummarizeFleetActivity(
		ctx context.Context,
		totals fleet.Totals,
		sample []entity.FuelTransaction,
		clients []entity.Client,
		language string,
	) (string, error)

	// Name identifica el proveedor ("gemini", "anthropic") en respuestas.
	Name() string
}
