package dto

import "github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"

// CreateIngredientRequest entrada para crear un ingrediente. Sin price ni unit la cantidad
// en receta se toma como importe directo en TL.
type CreateIngredientRequest struct {
	Name  string         `json:"name" validate:"required"`
	Price *entity.Number `json:"price"`
	Unit  string         `json:"unit"` // kg | gram | adet | TL | vacío
}

// UpdateIngredientRequest entrada para editar un ingrediente. ClearPrice quita el precio.
type UpdateIngredientRequest struct {
	Name       *string        `json:"name"`
	Price      *entity.Number `json:"price"`
	Unit       *string        `json:"unit"`
	ClearPrice bool           `json:"clear_price"`
}

// UpdateIngredientPriceRequest actualización rápida de precio.
type UpdateIngredientPriceRequest struct {
	Price entity.Number `json:"price"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      *Money `json:"price"`
	Unit       string `json:"unit,omitempty"`
	Basis      string `json:"basis"`
	RecipeUnit string `json:"recipe_unit"`
	Order      int    `json:"order"`
}

// IngredientListResponse lista de ingredientes por order.
type IngredientListResponse struct {
	Items []IngredientResponse `json:"items"`
}

// ToIngredientResponse mapea la entidad.
func ToIngredientResponse(i entity.Ingredient) IngredientResponse {
	out := IngredientResponse{
		ID:         i.ID,
		Name:       i.Name,
		Unit:       string(i.Unit),
		Basis:      i.Basis().String(),
		RecipeUnit: i.Basis().RecipeUnitLabel(),
		Order:      i.Order,
	}
	if i.Price != nil {
		m := NewMoney(i.Price.Float())
		out.Price = &m
	}
	return out
}
