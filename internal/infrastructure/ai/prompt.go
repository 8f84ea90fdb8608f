// Package ai adaptadores del puerto LLMService sobre las APIs REST de
// Google Gemini y Anthropic. Ambos usan net/http de la librería estándar;
// ningún SDK oficial.
package ai

import (
	"encoding/json"
	"fmt"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/fleet"
)

// systemPrompt rol del modelo: analista de consumo de combustible. La
// respuesta es prosa plana, nunca JSON ni markdown.
const systemPrompt = `You are a fleet fuel-consumption analyst for a fuel card operator in Ukraine.
Given aggregate totals and a sample of recent transactions, write a short professional summary
(3-4 sentences) of consumption trends, potential savings and irregularities.
Respond in the language indicated by the "language" field ("en" = English, "uk" = Ukrainian).
Return plain prose only: no markdown, no code blocks, no JSON.`

// noDataEN / noDataUK respuesta local cuando no hay nada que analizar: no
// vale la pena gastar una llamada externa.
const (
	noDataEN = "No data available for analysis."
	noDataUK = "Немає даних для аналізу."
)

// sampleEntry fila compacta de la muestra que viaja al modelo.
type sampleEntry struct {
	Client  string `json:"client"`
	Liters  string `json:"liters"`
	Station string `json:"station"`
	Date    string `json:"date"`
	Fuel    string `json:"fuel"`
}

// buildUserContent arma el texto de usuario: totales agregados más la
// muestra serializada como JSON compacto.
func buildUserContent(totals fleet.Totals, sample []entity.FuelTransaction, clients []entity.Client, language string) (string, error) {
	entries := make([]sampleEntry, 0, len(sample))
	for i := range sample {
		clientName := "Unknown"
		if c := entity.FindClientByID(clients, sample[i].ClientID); c != nil {
			clientName = c.Name
		}
		entries = append(entries, sampleEntry{
			Client:  clientName,
			Liters:  sample[i].Liters.String(),
			Station: sample[i].StationName,
			Date:    sample[i].Date,
			Fuel:    sample[i].FuelType,
		})
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("AI: serializar muestra: %w", err)
	}
	return fmt.Sprintf(
		"language: %s\nfleet totals: %d transactions, %s liters, %s revenue (UAH), %s operator margin (UAH)\nsample: %s",
		language, totals.Count, totals.Liters.StringFixed(2), totals.Revenue.StringFixed(2), totals.Margin.StringFixed(2), raw,
	), nil
}

// noDataMessage mensaje local según idioma.
func noDataMessage(language string) string {
	if language == "uk" {
		return noDataUK
	}
	return noDataEN
}
