package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// marginSystemPrompt define el rol del modelo y el formato de salida.
const marginSystemPrompt = `Sen deneyimli bir ürün fiyatlandırma stratejistisin. Bir ürün için hem rekabetçi hem kârlı
bir başlangıç kâr marjı yüzdesi öner. Tipik perakende ve restoran ürünlerinin genel piyasa dinamiklerini dikkate al.

SADECE şu yapıda geçerli bir JSON nesnesi döndür (markdown yok, kod bloğu yok):
{
  "suggested_profit_margin_percentage": <5 ile 100 arasında bir sayı, örn. 25 = %25>
}`

// marginUserPrompt mensaje de usuario con el costo del producto.
func marginUserPrompt(cost float64) string {
	return fmt.Sprintf("Ürün maliyeti: %.4f TL", cost)
}

// marginPayload JSON que esperamos recibir del modelo.
type marginPayload struct {
	SuggestedProfitMarginPercentage *float64 `json:"suggested_profit_margin_percentage"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// parseMarginPayload extrae el porcentaje sugerido del texto del modelo.
func parseMarginPayload(rawText string) (float64, error) {
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return 0, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}
	var payload marginPayload
	if err := json.Unmarshal([]byte(cleanJSON), &payload); err != nil {
		return 0, fmt.Errorf("AI: parsear JSON de sugerencia: %w (JSON extraído: %s)", err, cleanJSON)
	}
	if payload.SuggestedProfitMarginPercentage == nil {
		return 0, fmt.Errorf("AI: falta suggested_profit_margin_percentage (JSON extraído: %s)", cleanJSON)
	}
	v := *payload.SuggestedProfitMarginPercentage
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("AI: margen no finito")
	}
	return v, nil
}

// extractJSON extrae el primer objeto JSON de un texto libre.
//  1. Elimina bloques de código markdown (```json … ``` o ``` … ```).
//  2. Si no empieza con '{', usa regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
