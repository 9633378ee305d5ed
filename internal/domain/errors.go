package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrInvalidRate           = errors.New("tasa inválida: las comisiones deben estar en [0, 100) y el KDV ser >= 0")
	ErrInvalidDocument       = errors.New("estructura de documento inválida")
	ErrNonPositiveCost       = errors.New("el costo del producto debe ser positivo")
	ErrSuggestionUnavailable = errors.New("no se pudo obtener la sugerencia de margen")
)
