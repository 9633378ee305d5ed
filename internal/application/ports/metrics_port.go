package ports

import "time"

// Metrics puerto de observabilidad de los casos de uso.
type Metrics interface {
	// ObserveMutation registra una mutación del documento (op = "product.create", ...).
	ObserveMutation(op string, err error, elapsed time.Duration)
	// SetDocumentSize publica el tamaño de la instantánea vigente.
	SetDocumentSize(products, ingredients, categories, margins int)
	// ObserveSuggestion registra el resultado de una sugerencia de margen.
	ObserveSuggestion(outcome string)
}

// NopMetrics implementación vacía para tests y para METRICS_ENABLED=false.
type NopMetrics struct{}

func (NopMetrics) ObserveMutation(string, error, time.Duration) {}
func (NopMetrics) SetDocumentSize(int, int, int, int)           {}
func (NopMetrics) ObserveSuggestion(string)                     {}
