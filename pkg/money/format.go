// Package money formatea importes para presentación. El motor trabaja con float64 sin
// redondear; aquí se redondea con decimal y se localiza con x/text.
package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder se muestra en lugar de NaN o infinito.
const Placeholder = "—"

// DisplayPlaces decimales de los importes en pantalla; APIPlaces los de la API.
const (
	DisplayPlaces = 2
	APIPlaces     = 4
)

// IsFinite indica si el valor se puede mostrar.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Decimal redondea a places; ok=false si el valor no es finito (decimal no admite NaN/Inf).
func Decimal(v float64, places int32) (decimal.Decimal, bool) {
	if !IsFinite(v) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v).Round(places), true
}

// Formatter formatea importes en una moneda y un idioma.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter construye el formateador; por defecto se usa TRY en turco.
func NewFormatter(tag language.Tag, unit currency.Unit) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag), unit: unit}
}

// TRY formateador de liras turcas.
func TRY() *Formatter {
	return NewFormatter(language.Turkish, currency.TRY)
}

// Format importe con símbolo y 2 decimales, o Placeholder si no es finito.
func (f *Formatter) Format(v float64) string {
	d, ok := Decimal(v, DisplayPlaces)
	if !ok {
		return Placeholder
	}
	amount, _ := d.Float64()
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

// Percent porcentaje con el signo del idioma, o Placeholder.
func (f *Formatter) Percent(v float64) string {
	if !IsFinite(v) {
		return Placeholder
	}
	return f.printer.Sprintf("%%%v", decimal.NewFromFloat(v).Round(DisplayPlaces).String())
}
