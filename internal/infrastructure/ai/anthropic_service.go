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

	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa MarginSuggester.
var _ ports.MarginSuggester = (*AnthropicService)(nil)

const (
	anthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
)

// AnthropicService adaptador que implementa MarginSuggester usando la API REST de Anthropic.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string, opts ...Option) *AnthropicService {
	o := applyOptions(anthropicBaseURL, 25*time.Second, opts)
	return &AnthropicService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    o.baseURL,
		httpClient: o.httpClient,
	}
}

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

// SuggestProfitMargin envía el costo a Claude y devuelve el margen sugerido sin acotar.
func (s *AnthropicService) SuggestProfitMargin(ctx context.Context, cost float64) (float64, error) {
	if s.apiKey == "" {
		return 0, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 128,
		System:    marginSystemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: marginUserPrompt(cost)}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := strings.TrimRight(s.baseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return 0, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return 0, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return 0, fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return 0, fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return 0, fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return 0, fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return parseMarginPayload(anthResp.Content[0].Text)
}
