package entity

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
)

// Document es el único formato persistido: se lee y se sobrescribe completo.
type Document struct {
	Products    []Product    `json:"products"`
	Ingredients []Ingredient `json:"ingredients"`
	Categories  []Category   `json:"categories"`
	Margins     []Margin     `json:"margins"`
	RateConfig
}

// DefaultDocument documento inicial cuando no existe nada persistido.
func DefaultDocument() *Document {
	return &Document{
		Products:    []Product{},
		Ingredients: []Ingredient{},
		Categories:  []Category{},
		Margins:     []Margin{},
		RateConfig:  DefaultRates(),
	}
}

// documentShape detecta claves ausentes antes de decodificar.
type documentShape struct {
	Products               json.RawMessage `json:"products"`
	Ingredients            json.RawMessage `json:"ingredients"`
	PlatformCommissionRate json.RawMessage `json:"platformCommissionRate"`
	KDVRate                json.RawMessage `json:"kdvRate"`
	BankCommissionRate     json.RawMessage `json:"bankCommissionRate"`
}

// ParseDocument decodifica un documento recibido para reemplazo completo.
// Exige products, ingredients y las tres tasas; valida las tasas.
func ParseDocument(data []byte) (*Document, error) {
	var shape documentShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if shape.Products == nil || shape.Ingredients == nil ||
		shape.PlatformCommissionRate == nil || shape.KDVRate == nil || shape.BankCommissionRate == nil {
		return nil, domain.ErrInvalidDocument
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	doc.Normalize()
	if err := doc.RateConfig.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Normalize reemplaza listas nil por vacías para que el JSON siempre tenga arrays.
func (d *Document) Normalize() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Ingredients == nil {
		d.Ingredients = []Ingredient{}
	}
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	if d.Margins == nil {
		d.Margins = []Margin{}
	}
	for i := range d.Products {
		if d.Products[i].Recipe == nil {
			d.Products[i].Recipe = []RecipeItem{}
		}
	}
}

// Clone copia profunda del documento.
func (d *Document) Clone() *Document {
	out := &Document{
		Products:    make([]Product, len(d.Products)),
		Ingredients: make([]Ingredient, len(d.Ingredients)),
		Categories:  append([]Category{}, d.Categories...),
		Margins:     append([]Margin{}, d.Margins...),
		RateConfig:  d.RateConfig,
	}
	for i, p := range d.Products {
		p.Recipe = append([]RecipeItem{}, p.Recipe...)
		out.Products[i] = p
	}
	for i, ing := range d.Ingredients {
		if ing.Price != nil {
			ing.Price = PriceOf(ing.Price.Float())
		}
		out.Ingredients[i] = ing
	}
	return out
}

// ProductIndex posición del producto o -1.
func (d *Document) ProductIndex(id string) int {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// IngredientIndex posición del ingrediente o -1.
func (d *Document) IngredientIndex(id string) int {
	for i := range d.Ingredients {
		if d.Ingredients[i].ID == id {
			return i
		}
	}
	return -1
}

// CategoryIndex posición de la categoría o -1.
func (d *Document) CategoryIndex(id string) int {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

// MarginIndex posición del margen o -1.
func (d *Document) MarginIndex(id string) int {
	for i := range d.Margins {
		if d.Margins[i].ID == id {
			return i
		}
	}
	return -1
}

// NextProductOrder max(order)+1, 0 si no hay productos.
func (d *Document) NextProductOrder() int {
	next := 0
	for _, p := range d.Products {
		if p.Order+1 > next {
			next = p.Order + 1
		}
	}
	return next
}

// NextIngredientOrder max(order)+1, 0 si no hay ingredientes.
func (d *Document) NextIngredientOrder() int {
	next := 0
	for _, i := range d.Ingredients {
		if i.Order+1 > next {
			next = i.Order + 1
		}
	}
	return next
}

// SortedIngredients ingredientes por order; empates por orden de inserción.
func (d *Document) SortedIngredients() []Ingredient {
	out := append([]Ingredient{}, d.Ingredients...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
