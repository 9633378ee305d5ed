package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiyatvizyon-api/pkg/money"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Money importe para la API: value redondeado a 4 decimales o null si no es finito;
// display formateado en TRY o el marcador neutro.
type Money struct {
	Value   *decimal.Decimal `json:"value"`
	Display string           `json:"display"`
}

var tryFormat = money.TRY()

// NewMoney convierte un float64 del motor en Money.
func NewMoney(v float64) Money {
	d, ok := money.Decimal(v, money.APIPlaces)
	if !ok {
		return Money{Display: money.Placeholder}
	}
	return Money{Value: &d, Display: tryFormat.Format(v)}
}

// Percent redondea un porcentaje a 4 decimales (0 si no es finito).
func Percent(v float64) decimal.Decimal {
	d, ok := money.Decimal(v, money.APIPlaces)
	if !ok {
		return decimal.Zero
	}
	return d
}
