package report_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/report"
)

func categories() []entity.Category {
	return []entity.Category{
		{ID: "drinks", Name: "İçecekler", Color: "#60A5FA"},
		{ID: "wraps", Name: "Dürümler", Color: "#F87171"},
		{ID: "empty", Name: "Boş", Color: "#34D399"},
	}
}

func products() []entity.Product {
	return []entity.Product{
		{ID: "ayran", CategoryID: "drinks", Order: 3},
		{ID: "doner", CategoryID: "wraps", Order: 1},
		{ID: "cola", CategoryID: "drinks", Order: 0},
		{ID: "bag", Order: 5},
		{ID: "ghost", CategoryID: "deleted-category", Order: 2},
		{ID: "tavuk", CategoryID: "wraps", Order: 4},
	}
}

func ids(ps []entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestGroupByCategory_OrderAndMembers(t *testing.T) {
	groups := report.GroupByCategory(products(), categories())
	require.Len(t, groups, 3)

	assert.Equal(t, "drinks", groups[0].Category.ID)
	assert.Equal(t, []string{"cola", "ayran"}, ids(groups[0].Products))

	assert.Equal(t, "wraps", groups[1].Category.ID)
	assert.Equal(t, []string{"doner", "tavuk"}, ids(groups[1].Products))

	assert.True(t, groups[2].Uncategorized())
	assert.Equal(t, []string{"ghost", "bag"}, ids(groups[2].Products))
}

func TestGroupByCategory_PartitionsWithoutLoss(t *testing.T) {
	in := products()
	var all []string
	for _, g := range report.GroupByCategory(in, categories()) {
		all = append(all, ids(g.Products)...)
	}
	want := ids(in)
	sort.Strings(all)
	sort.Strings(want)
	assert.Equal(t, want, all)
}

func TestGroupByCategory_NoUncategorizedGroupWhenAllAssigned(t *testing.T) {
	groups := report.GroupByCategory([]entity.Product{
		{ID: "a", CategoryID: "wraps"},
		{ID: "b", CategoryID: "drinks"},
	}, categories())
	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.False(t, g.Uncategorized())
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, report.GroupByCategory(nil, categories()))
}

func TestGroupByCategory_DoesNotMutateInput(t *testing.T) {
	in := products()
	before := ids(in)
	_ = report.GroupByCategory(in, categories())
	assert.Equal(t, before, ids(in))
}

func TestMarginColumns_FilterAndSort(t *testing.T) {
	margins := []entity.Margin{
		{ID: "1", Value: 75, Type: entity.ChannelStore},
		{ID: "2", Value: 50, Type: entity.ChannelOnline},
		{ID: "3", Value: 25, Type: entity.ChannelStore},
		{ID: "4", Value: 50, Type: entity.ChannelStore},
	}
	store := report.MarginColumns(margins, entity.ChannelStore)
	require.Len(t, store, 3)
	assert.Equal(t, []float64{25, 50, 75}, []float64{store[0].Value.Float(), store[1].Value.Float(), store[2].Value.Float()})

	online := report.MarginColumns(margins, entity.ChannelOnline)
	require.Len(t, online, 1)
	assert.Equal(t, "2", online[0].ID)
}

func TestBuildTable_ComputesCellsPerChannel(t *testing.T) {
	doc := entity.DefaultDocument()
	doc.Ingredients = []entity.Ingredient{{ID: "flour", Price: entity.PriceOf(100), Unit: entity.UnitKilogram}}
	doc.Products = []entity.Product{{
		ID:          "bread",
		Recipe:      []entity.RecipeItem{{IngredientID: "flour", Quantity: 1000}},
		StorePrice:  170,
		OnlinePrice: 200,
	}}
	doc.Margins = []entity.Margin{
		{ID: "s50", Value: 50, Type: entity.ChannelStore},
		{ID: "o50", Value: 50, Type: entity.ChannelOnline},
	}

	table := report.BuildTable(doc)
	require.Len(t, table.Sections, 1)
	require.Equal(t, 1, table.RowCount())

	row := table.Sections[0].Rows[0]
	assert.InDelta(t, 100.0, row.Cost, 1e-9)

	require.Len(t, row.Store.Cells, 1)
	assert.InDelta(t, 165/0.975, row.Store.Cells[0].SellingPrice, 1e-9)
	assert.InDelta(t, 165/0.975-170, row.Store.Cells[0].Diff, 1e-9)
	assert.InDelta(t, 170*0.975, row.Store.NetSettlement, 1e-9)

	require.Len(t, row.Online.Cells, 1)
	assert.InDelta(t, 165/0.85, row.Online.Cells[0].SellingPrice, 1e-9)
	assert.InDelta(t, (200/1.1)*0.85, row.Online.NetSettlement, 1e-9)
}

func TestBuildTable_InvalidRateYieldsNaNCells(t *testing.T) {
	doc := entity.DefaultDocument()
	doc.BankCommissionRate = 100
	doc.Products = []entity.Product{{ID: "p", ManualCost: 10}}
	doc.Margins = []entity.Margin{{ID: "m", Value: 20, Type: entity.ChannelStore}}

	table := report.BuildTable(doc)
	cell := table.Sections[0].Rows[0].Store.Cells[0]
	assert.True(t, math.IsNaN(cell.SellingPrice))
	assert.True(t, math.IsNaN(cell.Diff))
}
