package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apelypenko/fueltrack-api/internal/application/ports"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/fleet"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService adaptador que implementa LLMService usando la API REST de
// Anthropic (Claude).
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador. model suele ser
// "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

func (s *AnthropicService) Name() string { return "anthropic" }

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// SummarizeFleetActivity envía totales y muestra a Claude y devuelve el
// resumen en prosa. Con muestra vacía responde localmente sin llamar a la API.
func (s *AnthropicService) SummarizeFleetActivity(
	ctx context.Context,
	totals fleet.Totals,
	sample []entity.FuelTransaction,
	clients []entity.Client,
	language string,
) (string, error) {
	if len(sample) == 0 {
		return noDataMessage(language), nil
	}
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	userContent, err := buildUserContent(totals, sample, clients, language)
	if err != nil {
		return "", err
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return strings.TrimSpace(anthResp.Content[0].Text), nil
}
