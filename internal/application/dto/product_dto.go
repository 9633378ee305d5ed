package dto

import (
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/costing"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto (receta vacía).
type CreateProductRequest struct {
	Name        string        `json:"name" validate:"required,min=1,max=200"`
	ManualCost  entity.Number `json:"manual_cost"`
	StorePrice  entity.Number `json:"store_price"`
	OnlinePrice entity.Number `json:"online_price"`
	CategoryID  string        `json:"category_id"`
}

// UpdateProductRequest campos editables en línea.
type UpdateProductRequest struct {
	Name        *string        `json:"name"`
	ManualCost  *entity.Number `json:"manual_cost"`
	StorePrice  *entity.Number `json:"store_price"`
	OnlinePrice *entity.Number `json:"online_price"`
}

// MoveProductRequest categoría destino; vacío = sin categoría.
type MoveProductRequest struct {
	CategoryID string `json:"category_id"`
}

// ReorderProductsRequest IDs en el nuevo orden (order = índice).
type ReorderProductsRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// AttachIngredientRequest agrega un ingrediente a la receta con cantidad 0.
type AttachIngredientRequest struct {
	IngredientID string `json:"ingredient_id"`
}

// SetQuantityRequest cantidad de la línea de receta (texto no numérico = 0).
type SetQuantityRequest struct {
	Quantity entity.Number `json:"quantity"`
}

// RecipeItemResponse línea de receta.
type RecipeItemResponse struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

// ProductResponse salida de un producto con su costo unitario calculado.
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	CategoryID  string               `json:"category_id,omitempty"`
	Order       int                  `json:"order"`
	Recipe      []RecipeItemResponse `json:"recipe"`
	ManualCost  Money                `json:"manual_cost"`
	UnitCost    Money                `json:"unit_cost"`
	CostSource  string               `json:"cost_source"` // recipe | manual
	StorePrice  Money                `json:"store_price"`
	OnlinePrice Money                `json:"online_price"`
}

// ProductListResponse productos por order.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// ToProductResponse mapea la entidad calculando el costo con el índice dado.
func ToProductResponse(p entity.Product, idx costing.IngredientIndex) ProductResponse {
	out := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Order:       p.Order,
		Recipe:      make([]RecipeItemResponse, 0, len(p.Recipe)),
		ManualCost:  NewMoney(p.ManualCost.Float()),
		UnitCost:    NewMoney(costing.UnitCost(p, idx)),
		CostSource:  "manual",
		StorePrice:  NewMoney(p.StorePrice.Float()),
		OnlinePrice: NewMoney(p.OnlinePrice.Float()),
	}
	if p.HasRecipe() {
		out.CostSource = "recipe"
	}
	for _, item := range p.Recipe {
		out.Recipe = append(out.Recipe, RecipeItemResponse{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity.Float(),
		})
	}
	return out
}

// CostLineResponse línea del desglose de costo.
type CostLineResponse struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Found        bool    `json:"found"`
	Basis        string  `json:"basis"`
	RecipeUnit   string  `json:"recipe_unit"`
	Quantity     float64 `json:"quantity"`
	Cost         Money   `json:"cost"`
}

// CostBreakdownResponse desglose por línea; Total coincide con la suma sin redondeo intermedio.
type CostBreakdownResponse struct {
	ProductID  string             `json:"product_id"`
	CostSource string             `json:"cost_source"`
	Lines      []CostLineResponse `json:"lines"`
	Total      Money              `json:"total"`
}
