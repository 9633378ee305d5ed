package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// MarginRequest alta o edición de margen.
type MarginRequest struct {
	Value entity.Number `json:"value"`
	Type  string        `json:"type"` // store | online
}

// MarginResponse salida de un margen.
type MarginResponse struct {
	ID    string          `json:"id"`
	Value decimal.Decimal `json:"value"`
	Type  string          `json:"type"`
}

// MarginMutationResponse resultado de alta/edición. Changed=false cuando el par (valor, tipo)
// ya existía y la operación no hizo nada.
type MarginMutationResponse struct {
	Margin  *MarginResponse `json:"margin,omitempty"`
	Changed bool            `json:"changed"`
}

// MarginColumnsResponse columnas de ambos canales ordenadas por valor.
type MarginColumnsResponse struct {
	Store  []MarginResponse `json:"store"`
	Online []MarginResponse `json:"online"`
}

// ToMarginResponse mapea la entidad.
func ToMarginResponse(m entity.Margin) MarginResponse {
	return MarginResponse{ID: m.ID, Value: Percent(m.Value.Float()), Type: string(m.Type)}
}
