package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number es un valor numérico tolerante del documento persistido.
// Acepta números JSON, cadenas numéricas ("12,5" incluido), "" y null; lo que no
// se puede interpretar queda en 0. NaN e infinitos se normalizan a 0 al leer y escribir.
type Number float64

// Float devuelve el valor como float64, normalizando NaN/Inf a 0.
func (n Number) Float() float64 {
	return Finite(float64(n))
}

// Finite devuelve v o 0 si v es NaN o infinito.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseNumber interpreta texto de formulario; los fallos de parseo valen 0.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Number(Finite(f))
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		*n = ParseNumber(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Number(Finite(f))
	return nil
}

// MarshalJSON implementa json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(n.Float(), 'f', -1, 64)), nil
}
