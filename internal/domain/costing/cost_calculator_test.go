package costing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/costing"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

const eps = 1e-9

func ingredients() []entity.Ingredient {
	return []entity.Ingredient{
		{ID: "flour", Name: "Un", Price: entity.PriceOf(100), Unit: entity.UnitKilogram},
		{ID: "saffron", Name: "Safran", Price: entity.PriceOf(0.35), Unit: entity.UnitGram},
		{ID: "lavash", Name: "Lavaş", Price: entity.PriceOf(2), Unit: entity.UnitPiece},
		{ID: "packaging", Name: "Ambalaj"},
		{ID: "gas", Name: "Tüp", Price: entity.PriceOf(9), Unit: entity.UnitCurrency},
	}
}

// Escenario: 100 por kilo y 250 g → 25.
func TestContribution_KilogramPriceGramQuantity(t *testing.T) {
	ing := entity.Ingredient{ID: "x", Price: entity.PriceOf(100), Unit: entity.UnitKilogram}
	assert.InDelta(t, 25.0, costing.Contribution(ing, 250), eps)
}

// 1000 g de un ingrediente a P por kilo cuestan exactamente P.
func TestContribution_KilogramRoundTrip(t *testing.T) {
	for _, p := range []float64{0.5, 1, 37.25, 100, 1999.99} {
		ing := entity.Ingredient{Price: entity.PriceOf(p), Unit: entity.UnitKilogram}
		assert.InDelta(t, p, costing.Contribution(ing, 1000), eps, "precio %v", p)
	}
}

func TestContribution_PerVariant(t *testing.T) {
	idx := costing.NewIngredientIndex(ingredients())
	tests := []struct {
		name string
		id   string
		qty  float64
		want float64
	}{
		{"gramo conserva precisión", "saffron", 3, 1.05},
		{"unidad", "lavash", 4, 8},
		{"sin precio ni unidad es directo", "packaging", 1.75, 1.75},
		{"unidad TL es directo", "gas", 3, 3},
		{"cantidad cero", "flour", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing, ok := idx.Lookup(tt.id)
			require.True(t, ok)
			assert.InDelta(t, tt.want, costing.Contribution(ing, tt.qty), eps)
		})
	}
}

func TestUnitCost_EmptyRecipeUsesManualCost(t *testing.T) {
	p := entity.Product{ID: "p", ManualCost: 42}
	assert.Equal(t, 42.0, costing.UnitCostOf(p, ingredients()))

	assert.Equal(t, 0.0, costing.UnitCostOf(entity.Product{ID: "q"}, nil))
}

func TestUnitCost_RecipeIgnoresManualCost(t *testing.T) {
	p := entity.Product{
		ID:         "p",
		ManualCost: 999,
		Recipe: []entity.RecipeItem{
			{IngredientID: "flour", Quantity: 250},
			{IngredientID: "lavash", Quantity: 1},
		},
	}
	assert.InDelta(t, 27.0, costing.UnitCostOf(p, ingredients()), eps)
}

func TestUnitCost_MissingIngredientContributesZero(t *testing.T) {
	list := ingredients()
	p := entity.Product{
		ID: "p",
		Recipe: []entity.RecipeItem{
			{IngredientID: "flour", Quantity: 250},
			{IngredientID: "lavash", Quantity: 2},
		},
	}
	before := costing.UnitCostOf(p, list)
	removed := costing.RecipeRowCost(p.Recipe[1], costing.NewIngredientIndex(list))

	var remaining []entity.Ingredient
	for _, ing := range list {
		if ing.ID != "lavash" {
			remaining = append(remaining, ing)
		}
	}
	var after float64
	require.NotPanics(t, func() { after = costing.UnitCostOf(p, remaining) })
	assert.InDelta(t, before-removed, after, eps)
	assert.InDelta(t, 25.0, after, eps)
}

func TestUnitCost_NegativeQuantityIsLinear(t *testing.T) {
	p := entity.Product{Recipe: []entity.RecipeItem{{IngredientID: "lavash", Quantity: -3}}}
	assert.InDelta(t, -6.0, costing.UnitCostOf(p, ingredients()), eps)
}

func TestUnitCost_NaNQuantityNormalizedToZero(t *testing.T) {
	p := entity.Product{Recipe: []entity.RecipeItem{
		{IngredientID: "flour", Quantity: entity.Number(math.NaN())},
		{IngredientID: "lavash", Quantity: 1},
	}}
	got := costing.UnitCostOf(p, ingredients())
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, 2.0, got, eps)
}

func TestBreakdown_AgreesWithUnitCost(t *testing.T) {
	idx := costing.NewIngredientIndex(ingredients())
	p := entity.Product{Recipe: []entity.RecipeItem{
		{IngredientID: "flour", Quantity: 125},
		{IngredientID: "saffron", Quantity: 0.2},
		{IngredientID: "deleted", Quantity: 10},
		{IngredientID: "packaging", Quantity: 3.5},
	}}

	lines := costing.Breakdown(p, idx)
	require.Len(t, lines, 4)

	sum := 0.0
	for _, l := range lines {
		sum += l.Cost
	}
	assert.Equal(t, costing.UnitCost(p, idx), sum)
	assert.False(t, lines[2].Found)
	assert.Equal(t, 0.0, lines[2].Cost)
	assert.Equal(t, entity.BasisPerKilogram, lines[0].Basis)
	assert.Equal(t, "Un", lines[0].Name)
}

func TestIngredientIndex_FirstDuplicateWins(t *testing.T) {
	idx := costing.NewIngredientIndex([]entity.Ingredient{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
	})
	ing, ok := idx.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "first", ing.Name)

	_, ok = idx.Lookup("missing")
	assert.False(t, ok)
}
