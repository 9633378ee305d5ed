// Package costing calcula el costo unitario de un producto a partir de su receta
// y de la lista de precios de ingredientes (servicio de dominio puro, sin estado).
package costing

import (
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// gramsPerKilogram conversión aplicada cuando el precio es por kilo y la receta en gramos.
const gramsPerKilogram = 1000

// IngredientIndex resuelve referencias débiles de receta por ID.
type IngredientIndex map[string]entity.Ingredient

// NewIngredientIndex indexa la lista global de ingredientes. Con IDs repetidos gana el primero.
func NewIngredientIndex(ingredients []entity.Ingredient) IngredientIndex {
	idx := make(IngredientIndex, len(ingredients))
	for _, ing := range ingredients {
		if _, ok := idx[ing.ID]; !ok {
			idx[ing.ID] = ing
		}
	}
	return idx
}

// Lookup devuelve el ingrediente y true, o false si fue borrado. Todo consumidor debe manejar el false.
func (idx IngredientIndex) Lookup(id string) (entity.Ingredient, bool) {
	ing, ok := idx[id]
	return ing, ok
}

// Contribution costo de una cantidad de receta según la variante del ingrediente.
//
//	por kilo:   (precio / 1000) * gramos
//	por gramo:  precio * gramos
//	por unidad: precio * unidades
//	directo:    la cantidad es el importe en TL
func Contribution(ing entity.Ingredient, quantity float64) float64 {
	quantity = entity.Finite(quantity)
	switch ing.Basis() {
	case entity.BasisPerKilogram:
		return (ing.UnitPrice() / gramsPerKilogram) * quantity
	case entity.BasisPerGram:
		return ing.UnitPrice() * quantity
	case entity.BasisPerPiece:
		return ing.UnitPrice() * quantity
	case entity.BasisDirect:
		return quantity
	default:
		return 0
	}
}

// RecipeRowCost costo de una línea de receta; 0 si el ingrediente ya no existe.
// Es exactamente el término que suma UnitCost, sin redondeo.
func RecipeRowCost(item entity.RecipeItem, idx IngredientIndex) float64 {
	ing, ok := idx.Lookup(item.IngredientID)
	if !ok {
		return 0
	}
	return Contribution(ing, item.Quantity.Float())
}

// UnitCost costo unitario del producto. Con receta vacía devuelve ManualCost; con receta lo ignora.
// No redondea: el formato monetario se aplica solo al presentar.
func UnitCost(p entity.Product, idx IngredientIndex) float64 {
	if !p.HasRecipe() {
		return p.ManualCost.Float()
	}
	total := 0.0
	for _, item := range p.Recipe {
		total += RecipeRowCost(item, idx)
	}
	return total
}

// UnitCostOf atajo que indexa la lista en cada llamada.
func UnitCostOf(p entity.Product, ingredients []entity.Ingredient) float64 {
	return UnitCost(p, NewIngredientIndex(ingredients))
}

// Line desglose de una línea de receta para presentación.
type Line struct {
	IngredientID string
	Name         string
	Found        bool
	Basis        entity.Basis
	Quantity     float64
	Cost         float64
}

// Breakdown desglosa la receta línea por línea; la suma de Cost coincide con UnitCost.
func Breakdown(p entity.Product, idx IngredientIndex) []Line {
	lines := make([]Line, 0, len(p.Recipe))
	for _, item := range p.Recipe {
		line := Line{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity.Float(),
			Basis:        entity.BasisDirect,
		}
		if ing, ok := idx.Lookup(item.IngredientID); ok {
			line.Found = true
			line.Name = ing.Name
			line.Basis = ing.Basis()
		}
		line.Cost = RecipeRowCost(item, idx)
		lines = append(lines, line)
	}
	return lines
}
