package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/pkg/logger"
)

const (
	minSuggestedMargin = 5
	maxSuggestedMargin = 100

	defaultSuggestionTimeout = 10 * time.Second
)

// AIUseCase orquesta la sugerencia de margen asistida por IA.
// Cada llamada al LLM lleva un timeout para que la latencia externa no bloquee el servidor.
type AIUseCase struct {
	llm     ports.MarginSuggester
	margins *MarginUseCase
	metrics ports.Metrics
	log     *logger.Logger
	timeout time.Duration
}

// NewAIUseCase construye el caso de uso inyectando el puerto MarginSuggester.
// timeout <= 0 usa 10 s.
func NewAIUseCase(llm ports.MarginSuggester, margins *MarginUseCase, metrics ports.Metrics, log *logger.Logger, timeout time.Duration) *AIUseCase {
	if timeout <= 0 {
		timeout = defaultSuggestionTimeout
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AIUseCase{llm: llm, margins: margins, metrics: metrics, log: log.Component("ai"), timeout: timeout}
}

// SuggestMargin rechaza costos no positivos antes de llamar al servicio y acota el resultado a [5, 100].
// Con apply_to agrega la sugerencia como columna de margen de ese canal.
func (uc *AIUseCase) SuggestMargin(ctx context.Context, req dto.MarginSuggestionRequest) (*dto.MarginSuggestionResponse, error) {
	cost := req.Cost.Float()
	if cost <= 0 {
		uc.metrics.ObserveSuggestion("rejected")
		return nil, domain.ErrNonPositiveCost
	}
	if uc.llm == nil {
		uc.metrics.ObserveSuggestion("unavailable")
		return nil, fmt.Errorf("proveedor IA no configurado: %w", domain.ErrSuggestionUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.llm.SuggestProfitMargin(ctx, cost)
	if err != nil {
		uc.metrics.ObserveSuggestion("error")
		uc.log.Error().Err(err).Float64("cost", cost).Msg("sugerencia de margen fallida")
		return nil, fmt.Errorf("%w: %w", domain.ErrSuggestionUnavailable, err)
	}
	uc.metrics.ObserveSuggestion("ok")

	out := &dto.MarginSuggestionResponse{SuggestedMarginPct: ClampMargin(raw)}
	if applyTo := strings.TrimSpace(req.ApplyTo); applyTo != "" && uc.margins != nil {
		applied, err := uc.margins.Add(ctx, dto.MarginRequest{Value: entity.Number(out.SuggestedMarginPct), Type: applyTo})
		if err != nil {
			return nil, err
		}
		out.Applied = applied
	}
	return out, nil
}

// ClampMargin acota la sugerencia al rango [5, 100]. NaN se toma como el mínimo.
func ClampMargin(v float64) float64 {
	if math.IsNaN(v) {
		return minSuggestedMargin
	}
	if v < minSuggestedMargin {
		return minSuggestedMargin
	}
	if v > maxSuggestedMargin {
		return maxSuggestedMargin
	}
	return v
}
