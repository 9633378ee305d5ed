package dto

import "github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"

// MarginSuggestionRequest costo para el que se pide un margen. ApplyTo (store|online) agrega
// la sugerencia como columna de margen de ese canal.
type MarginSuggestionRequest struct {
	Cost    entity.Number `json:"cost"`
	ApplyTo string        `json:"apply_to"`
}

// MarginSuggestionResponse margen sugerido en [5, 100].
type MarginSuggestionResponse struct {
	SuggestedMarginPct float64                 `json:"suggested_margin_pct"`
	Applied            *MarginMutationResponse `json:"applied,omitempty"`
}
