package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/application/ports"
	"github.com/apelypenko/fueltrack-api/internal/domain/fleet"
	"github.com/apelypenko/fueltrack-api/internal/domain/ledger"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// sampleLimit tope de transacciones que viajan al LLM: el resumen trabaja
// sobre totales más una muestra reciente, nunca el ledger completo.
const sampleLimit = 50

// InsightUseCase orquesta el resumen de actividad de flota asistido por IA.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar que
// las latencias externas bloqueen los goroutines del servidor.
type InsightUseCase struct {
	store repository.SnapshotStore
	llm   ports.LLMService
}

// NewInsightUseCase construye el caso de uso inyectando el puerto LLMService.
func NewInsightUseCase(store repository.SnapshotStore, llm ports.LLMService) *InsightUseCase {
	return &InsightUseCase{store: store, llm: llm}
}

// Summarize agrega el libro mayor, recorta la muestra a las transacciones
// más recientes y delega al servicio de LLM. Language vacío usa el idioma
// configurado de reportes.
func (uc *InsightUseCase) Summarize(ctx context.Context, req dto.InsightRequest) (*dto.InsightResponse, error) {
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, err
	}
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}
	language := req.Language
	if language == "" {
		language, err = uc.store.LoadLanguage()
		if err != nil {
			return nil, err
		}
	}

	totals := fleet.Aggregate(txs, clients)
	sample := ledger.Query(txs, clients, ledger.Filter{})
	if len(sample) > sampleLimit {
		sample = sample[:sampleLimit]
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	summary, err := uc.llm.SummarizeFleetActivity(ctx, totals, sample, clients, language)
	if err != nil {
		return nil, fmt.Errorf("resumen IA: %w", err)
	}

	return &dto.InsightResponse{
		Summary:     summary,
		Provider:    uc.llm.Name(),
		SampleSize:  len(sample),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
