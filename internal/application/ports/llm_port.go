package ports

import "context"

// MarginSuggester puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
type MarginSuggester interface {
	// SuggestProfitMargin propone un porcentaje de ganancia para un producto con el costo dado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SuggestProfitMargin(ctx context.Context, cost float64) (float64, error)
}
