package entity

// RecipeItem línea de receta. IngredientID es una referencia débil: puede apuntar a un ingrediente borrado.
type RecipeItem struct {
	IngredientID string `json:"ingredientId"`
	Quantity     Number `json:"quantity"`
}

// Product producto vendible. ManualCost solo aplica cuando Recipe está vacía.
// StorePrice y OnlinePrice son precios de lista declarados, independientes de los márgenes.
type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Recipe      []RecipeItem `json:"recipe"`
	ManualCost  Number       `json:"manualCost"`
	StorePrice  Number       `json:"storePrice"`
	OnlinePrice Number       `json:"onlinePrice"`
	Order       int          `json:"order"`
	CategoryID  string       `json:"categoryId,omitempty"`
}

// HasRecipe indica si el costo se deriva de la receta.
func (p Product) HasRecipe() bool {
	return len(p.Recipe) > 0
}

// RecipeIndex devuelve la posición de la línea del ingrediente o -1.
func (p Product) RecipeIndex(ingredientID string) int {
	for i, item := range p.Recipe {
		if item.IngredientID == ingredientID {
			return i
		}
	}
	return -1
}

// ListPrice devuelve el precio declarado para el canal.
func (p Product) ListPrice(ch Channel) float64 {
	if ch == ChannelOnline {
		return p.OnlinePrice.Float()
	}
	return p.StorePrice.Float()
}
