package entity

import (
	"fmt"
	"strings"
)

// Unit unidad de medida en la que se expresa el precio de un ingrediente.
type Unit string

const (
	UnitKilogram Unit = "kg"   // precio por kilo; la receta se expresa en gramos
	UnitGram     Unit = "gram" // precio por gramo
	UnitPiece    Unit = "adet" // precio por unidad
	UnitCurrency Unit = "TL"   // la cantidad de la receta ya es un importe en TL
)

// ParseUnit normaliza la unidad escrita por el usuario. Cadena vacía = sin unidad.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "kg", "kilo", "kilogram", "kilogramo":
		return UnitKilogram, nil
	case "gram", "gr", "g", "gramo":
		return UnitGram, nil
	case "adet", "piece", "unidad", "pcs":
		return UnitPiece, nil
	case "tl", "try", "₺":
		return UnitCurrency, nil
	default:
		return "", fmt.Errorf("unidad desconocida %q", s)
	}
}

// Basis es la variante que decide la regla aritmética del costo de una línea de receta.
type Basis int

const (
	// BasisDirect la cantidad es directamente un importe en TL.
	BasisDirect Basis = iota
	// BasisPerKilogram precio por kilo, cantidad en gramos (conversión 1000:1).
	BasisPerKilogram
	// BasisPerGram precio por gramo, cantidad en gramos.
	BasisPerGram
	// BasisPerPiece precio por unidad, cantidad en unidades.
	BasisPerPiece
)

func (b Basis) String() string {
	switch b {
	case BasisPerKilogram:
		return "per_kilogram"
	case BasisPerGram:
		return "per_gram"
	case BasisPerPiece:
		return "per_piece"
	default:
		return "direct"
	}
}

// RecipeUnitLabel etiqueta de la cantidad en la receta para cada variante.
func (b Basis) RecipeUnitLabel() string {
	switch b {
	case BasisPerKilogram, BasisPerGram:
		return "gram"
	case BasisPerPiece:
		return "adet"
	default:
		return "TL"
	}
}

// Ingredient materia prima con precio por unidad. Price nil = la cantidad en receta es un costo directo en TL.
type Ingredient struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price *Number `json:"price,omitempty"`
	Unit  Unit    `json:"unit,omitempty"`
	Order int     `json:"order"`
}

// Basis resuelve la variante de cálculo. Sin precio o sin unidad (o unidad TL) es directo;
// una unidad desconocida con precio se trata como precio por unidad.
func (i Ingredient) Basis() Basis {
	if i.Price == nil || i.Unit == "" {
		return BasisDirect
	}
	switch i.Unit {
	case UnitKilogram:
		return BasisPerKilogram
	case UnitGram:
		return BasisPerGram
	case UnitCurrency:
		return BasisDirect
	default:
		return BasisPerPiece
	}
}

// UnitPrice devuelve el precio normalizado (0 si no tiene).
func (i Ingredient) UnitPrice() float64 {
	if i.Price == nil {
		return 0
	}
	return i.Price.Float()
}

// PriceOf construye el puntero de precio a partir de un float.
func PriceOf(v float64) *Number {
	n := Number(Finite(v))
	return &n
}
