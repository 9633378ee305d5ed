package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/report"
)

// memRepo repositorio en memoria con fallo de guardado configurable.
type memRepo struct {
	mu      sync.Mutex
	doc     *entity.Document
	saves   int
	saveErr error
}

func newMemRepo(doc *entity.Document) *memRepo {
	if doc == nil {
		doc = entity.DefaultDocument()
	}
	return &memRepo{doc: doc}
}

func (r *memRepo) Load(context.Context) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Clone(), nil
}

func (r *memRepo) Save(_ context.Context, doc *entity.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.doc = doc.Clone()
	return nil
}

func (r *memRepo) stored() *entity.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Clone()
}

func num(v float64) *entity.Number {
	n := entity.Number(v)
	return &n
}

func newWorkspace(t *testing.T, doc *entity.Document) (*usecase.WorkspaceUseCase, *memRepo) {
	t.Helper()
	repo := newMemRepo(doc)
	ws := usecase.NewWorkspaceUseCase(repo, nil, nil)
	require.NoError(t, ws.Load(context.Background()))
	return ws, repo
}

func TestWorkspace_FailedSaveKeepsSnapshot(t *testing.T) {
	ws, repo := newWorkspace(t, nil)
	ctx := context.Background()
	repo.saveErr = errors.New("disco lleno")

	_, err := ws.Mutate(ctx, "test", func(doc *entity.Document) (bool, error) {
		doc.Products = append(doc.Products, entity.Product{ID: "p1", Name: "Lahmacun"})
		return true, nil
	})
	require.Error(t, err)

	snap, err := ws.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Products, "la instantánea no debe cambiar si falla el guardado")
}

func TestWorkspace_NoChangeSkipsSave(t *testing.T) {
	ws, repo := newWorkspace(t, nil)

	_, err := ws.Mutate(context.Background(), "test", func(*entity.Document) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Zero(t, repo.saves)
}

func TestWorkspace_SnapshotIsACopy(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	ctx := context.Background()

	snap, err := ws.Snapshot(ctx)
	require.NoError(t, err)
	snap.Products = append(snap.Products, entity.Product{ID: "x"})

	again, err := ws.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Products)
}

func TestIngredients_CreateAppendsOrderAndPersists(t *testing.T) {
	ws, repo := newWorkspace(t, nil)
	uc := usecase.NewIngredientUseCase(ws)
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateIngredientRequest{Name: "Un", Price: num(40), Unit: "kg"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, dto.CreateIngredientRequest{Name: "Ambalaj", Unit: ""})
	require.NoError(t, err)

	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.Equal(t, "per_kilogram", a.Basis)
	assert.Equal(t, "gram", a.RecipeUnit)
	assert.Equal(t, "direct", b.Basis)
	assert.Nil(t, b.Price)
	assert.Len(t, repo.stored().Ingredients, 2)

	_, err = uc.Create(ctx, dto.CreateIngredientRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateIngredientRequest{Name: "X", Unit: "litre"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngredients_UpdatePriceAndClear(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	uc := usecase.NewIngredientUseCase(ws)
	ctx := context.Background()

	ing, err := uc.Create(ctx, dto.CreateIngredientRequest{Name: "Peynir", Price: num(300), Unit: "kg"})
	require.NoError(t, err)

	got, err := uc.UpdatePrice(ctx, ing.ID, dto.UpdateIngredientPriceRequest{Price: 320})
	require.NoError(t, err)
	require.NotNil(t, got.Price)
	assert.Equal(t, "320", got.Price.Value.String())

	got, err = uc.Update(ctx, ing.ID, dto.UpdateIngredientRequest{ClearPrice: true})
	require.NoError(t, err)
	assert.Nil(t, got.Price)
	assert.Equal(t, "direct", got.Basis)

	_, err = uc.UpdatePrice(ctx, "nope", dto.UpdateIngredientPriceRequest{Price: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIngredients_DeleteKeepsRecipeReferenceAtZeroCost(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	ctx := context.Background()
	ingredients := usecase.NewIngredientUseCase(ws)
	products := usecase.NewProductUseCase(ws)

	flour, err := ingredients.Create(ctx, dto.CreateIngredientRequest{Name: "Un", Price: num(40), Unit: "kg"})
	require.NoError(t, err)
	meat, err := ingredients.Create(ctx, dto.CreateIngredientRequest{Name: "Kıyma", Price: num(600), Unit: "kg"})
	require.NoError(t, err)
	p, err := products.Create(ctx, dto.CreateProductRequest{Name: "Lahmacun"})
	require.NoError(t, err)

	lines := []struct {
		id  string
		qty float64
	}{{flour.ID, 100}, {meat.ID, 50}}
	for _, l := range lines {
		_, err = products.AttachIngredient(ctx, p.ID, dto.AttachIngredientRequest{IngredientID: l.id})
		require.NoError(t, err)
		_, err = products.SetQuantity(ctx, p.ID, l.id, dto.SetQuantityRequest{Quantity: entity.Number(l.qty)})
		require.NoError(t, err)
	}
	before, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "34", before.UnitCost.Value.String()) // 4 + 30

	require.NoError(t, ingredients.Delete(ctx, meat.ID))

	after, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, after.Recipe, 2, "la referencia débil sobrevive")
	assert.Equal(t, "4", after.UnitCost.Value.String())

	breakdown, err := products.CostBreakdown(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, breakdown.Lines, 2)
	assert.False(t, breakdown.Lines[1].Found)
	assert.Equal(t, "0", breakdown.Lines[1].Cost.Value.String())
	assert.Equal(t, "recipe", breakdown.CostSource)
}

func TestProducts_CreateOrderAndCategory(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	ctx := context.Background()
	products := usecase.NewProductUseCase(ws)
	categories := usecase.NewCategoryUseCase(ws)

	cat, err := categories.Create(ctx, dto.CategoryRequest{Name: "Pideler"})
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Color)

	first, err := products.Create(ctx, dto.CreateProductRequest{Name: "Kaşarlı", ManualCost: 42, CategoryID: cat.ID})
	require.NoError(t, err)
	second, err := products.Create(ctx, dto.CreateProductRequest{Name: "Ayran"})
	require.NoError(t, err)

	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
	assert.Equal(t, "manual", first.CostSource)
	assert.Equal(t, "42", first.UnitCost.Value.String())

	_, err = products.Create(ctx, dto.CreateProductRequest{Name: "X", CategoryID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducts_AttachTwiceIsNoOp(t *testing.T) {
	ws, repo := newWorkspace(t, nil)
	ctx := context.Background()
	ingredients := usecase.NewIngredientUseCase(ws)
	products := usecase.NewProductUseCase(ws)

	ing, err := ingredients.Create(ctx, dto.CreateIngredientRequest{Name: "Tuz"})
	require.NoError(t, err)
	p, err := products.Create(ctx, dto.CreateProductRequest{Name: "Çorba"})
	require.NoError(t, err)

	_, err = products.AttachIngredient(ctx, p.ID, dto.AttachIngredientRequest{IngredientID: ing.ID})
	require.NoError(t, err)
	saves := repo.saves
	got, err := products.AttachIngredient(ctx, p.ID, dto.AttachIngredientRequest{IngredientID: ing.ID})
	require.NoError(t, err)

	assert.Len(t, got.Recipe, 1)
	assert.Zero(t, got.Recipe[0].Quantity)
	assert.Equal(t, saves, repo.saves)

	_, err = products.AttachIngredient(ctx, p.ID, dto.AttachIngredientRequest{IngredientID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducts_DetachLastResetsManualCost(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	ctx := context.Background()
	ingredients := usecase.NewIngredientUseCase(ws)
	products := usecase.NewProductUseCase(ws)

	ing, err := ingredients.Create(ctx, dto.CreateIngredientRequest{Name: "Paket"})
	require.NoError(t, err)
	p, err := products.Create(ctx, dto.CreateProductRequest{Name: "Tost", ManualCost: 42})
	require.NoError(t, err)
	_, err = products.AttachIngredient(ctx, p.ID, dto.AttachIngredientRequest{IngredientID: ing.ID})
	require.NoError(t, err)
	withRecipe, err := products.SetQuantity(ctx, p.ID, ing.ID, dto.SetQuantityRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, "7", withRecipe.UnitCost.Value.String(), "con receta se ignora el costo manual")

	got, err := products.DetachIngredient(ctx, p.ID, ing.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Recipe)
	assert.Equal(t, "0", got.ManualCost.Value.String())
	assert.Equal(t, "manual", got.CostSource)

	_, err = products.DetachIngredient(ctx, p.ID, ing.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducts_Reorder(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	ctx := context.Background()
	products := usecase.NewProductUseCase(ws)

	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		p, err := products.Create(ctx, dto.CreateProductRequest{Name: name})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	list, err := products.Reorder(ctx, dto.ReorderProductsRequest{ProductIDs: []string{ids[2], ids[0], ids[1]}})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "C", list.Items[0].Name)
	assert.Equal(t, 0, list.Items[0].Order)
	assert.Equal(t, "B", list.Items[2].Name)

	_, err = products.Reorder(ctx, dto.ReorderProductsRequest{ProductIDs: []string{ids[0], ids[0], ids[1]}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = products.Reorder(ctx, dto.ReorderProductsRequest{ProductIDs: ids[:2]})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategories_DeleteUncategorizesProducts(t *testing.T) {
	ws, repo := newWorkspace(t, nil)
	ctx := context.Background()
	products := usecase.NewProductUseCase(ws)
	categories := usecase.NewCategoryUseCase(ws)

	cat, err := categories.Create(ctx, dto.CategoryRequest{Name: "İçecek", Color: "#0ea5e9"})
	require.NoError(t, err)
	p, err := products.Create(ctx, dto.CreateProductRequest{Name: "Ayran", CategoryID: cat.ID})
	require.NoError(t, err)

	require.NoError(t, categories.Delete(ctx, cat.ID))

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.CategoryID)
	assert.Empty(t, repo.stored().Categories)
	assert.ErrorIs(t, categories.Delete(ctx, cat.ID), domain.ErrNotFound)
}

func TestMargins_DuplicatePairIsNoOp(t *testing.T) {
	ws, repo := newWorkspace(t, nil)
	ctx := context.Background()
	uc := usecase.NewMarginUseCase(ws)

	store, err := uc.Add(ctx, dto.MarginRequest{Value: 50, Type: "store"})
	require.NoError(t, err)
	assert.True(t, store.Changed)
	online, err := uc.Add(ctx, dto.MarginRequest{Value: 50, Type: "online"})
	require.NoError(t, err)
	assert.True(t, online.Changed)

	saves := repo.saves
	dup, err := uc.Add(ctx, dto.MarginRequest{Value: 50, Type: "store"})
	require.NoError(t, err)
	assert.False(t, dup.Changed)
	assert.Nil(t, dup.Margin)
	assert.Equal(t, saves, repo.saves)

	cols, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cols.Store, 1)
	assert.Len(t, cols.Online, 1)
}

func TestMargins_UpdateAndValidation(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	ctx := context.Background()
	uc := usecase.NewMarginUseCase(ws)

	a, err := uc.Add(ctx, dto.MarginRequest{Value: 30, Type: "store"})
	require.NoError(t, err)
	_, err = uc.Add(ctx, dto.MarginRequest{Value: 40, Type: "store"})
	require.NoError(t, err)

	clash, err := uc.Update(ctx, a.Margin.ID, dto.MarginRequest{Value: 40, Type: "store"})
	require.NoError(t, err)
	assert.False(t, clash.Changed)
	assert.Equal(t, "30", clash.Margin.Value.String())

	moved, err := uc.Update(ctx, a.Margin.ID, dto.MarginRequest{Value: 35, Type: "online"})
	require.NoError(t, err)
	assert.True(t, moved.Changed)
	assert.Equal(t, "online", moved.Margin.Type)

	_, err = uc.Add(ctx, dto.MarginRequest{Value: 0, Type: "store"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Add(ctx, dto.MarginRequest{Value: 10, Type: "delivery"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Delete(ctx, "missing"), domain.ErrNotFound)
}

func TestRates_UpdateValidatesBeforeSaving(t *testing.T) {
	ws, repo := newWorkspace(t, nil)
	ctx := context.Background()
	uc := usecase.NewDocumentUseCase(ws)

	got, err := uc.UpdateRates(ctx, dto.RatesRequest{KDVRate: num(20)})
	require.NoError(t, err)
	assert.Equal(t, "20", got.KDVRate.String())
	assert.Equal(t, "15", got.PlatformCommissionRate.String())

	_, err = uc.UpdateRates(ctx, dto.RatesRequest{BankCommissionRate: num(100)})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
	_, err = uc.UpdateRates(ctx, dto.RatesRequest{KDVRate: num(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	assert.Equal(t, entity.Number(20), repo.stored().KDVRate)
	assert.Equal(t, entity.Number(entity.DefaultBankCommissionRate), repo.stored().BankCommissionRate)
}

func TestDocument_ReplaceValidatesShape(t *testing.T) {
	ws, repo := newWorkspace(t, nil)
	ctx := context.Background()
	uc := usecase.NewDocumentUseCase(ws)

	_, err := uc.Replace(ctx, []byte(`{"products":[]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	doc, err := uc.Replace(ctx, []byte(`{
		"products":[{"id":"p1","name":"Pide","recipe":[],"manualCost":"12,5","storePrice":0,"onlinePrice":0,"order":0}],
		"ingredients":[],
		"platformCommissionRate":15,"kdvRate":10,"bankCommissionRate":2.5
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, entity.Number(12.5), doc.Products[0].ManualCost)
	assert.Empty(t, doc.Categories)
	assert.Len(t, repo.stored().Products, 1)
}

func TestPricing_QuoteScenarios(t *testing.T) {
	ws, _ := newWorkspace(t, nil)
	uc := usecase.NewPricingUseCase(ws)
	ctx := context.Background()

	store, err := uc.Quote(ctx, dto.QuoteRequest{Cost: 100, MarginPct: 50, Channel: "store"})
	require.NoError(t, err)
	assert.Equal(t, "150", store.BasePrice.Value.String())
	assert.Equal(t, "165", store.GrossPrice.Value.String())
	assert.Equal(t, "169.2308", store.SellingPrice.Value.String())

	online, err := uc.Quote(ctx, dto.QuoteRequest{Cost: 100, MarginPct: 50, Channel: "online"})
	require.NoError(t, err)
	assert.Equal(t, "194.1176", online.SellingPrice.Value.String())

	_, err = uc.Quote(ctx, dto.QuoteRequest{Cost: 1, MarginPct: 1, Channel: "kiosk"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPricing_TableGroupsAndDiff(t *testing.T) {
	doc := entity.DefaultDocument()
	doc.Categories = []entity.Category{{ID: "c1", Name: "Pideler", Color: "#f00"}}
	doc.Margins = []entity.Margin{{ID: "m1", Value: 50, Type: entity.ChannelStore}}
	doc.Products = []entity.Product{
		{ID: "p1", Name: "Kaşarlı", ManualCost: 100, StorePrice: 170, CategoryID: "c1", Recipe: []entity.RecipeItem{}},
		{ID: "p2", Name: "Ayran", ManualCost: 10, Order: 1, Recipe: []entity.RecipeItem{}},
	}
	ws, _ := newWorkspace(t, doc)

	table, err := usecase.NewPricingUseCase(ws).Table(context.Background())
	require.NoError(t, err)
	require.Len(t, table.Sections, 2)
	assert.Equal(t, "Pideler", table.Sections[0].Label)
	assert.Nil(t, table.Sections[1].Category)
	assert.Equal(t, dto.UncategorizedLabel, table.Sections[1].Label)

	row := table.Sections[0].Rows[0]
	require.Len(t, row.Store.Cells, 1)
	assert.Equal(t, "169.2308", row.Store.Cells[0].SellingPrice.Value.String())
	assert.Equal(t, "-0.7692", row.Store.Cells[0].Diff.Value.String())
	assert.Equal(t, "165.75", row.Store.NetSettlement.Value.String())
	assert.Empty(t, row.Online.Cells)
}

type stubSuggester struct {
	value float64
	err   error
	calls int
}

func (s *stubSuggester) SuggestProfitMargin(ctx context.Context, cost float64) (float64, error) {
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("sin deadline")
	}
	return s.value, s.err
}

func TestAI_SuggestMargin(t *testing.T) {
	ctx := context.Background()

	t.Run("rechaza costo no positivo sin llamar al servicio", func(t *testing.T) {
		ws, _ := newWorkspace(t, nil)
		llm := &stubSuggester{value: 30}
		uc := usecase.NewAIUseCase(llm, usecase.NewMarginUseCase(ws), nil, nil, time.Second)

		_, err := uc.SuggestMargin(ctx, dto.MarginSuggestionRequest{Cost: 0})
		assert.ErrorIs(t, err, domain.ErrNonPositiveCost)
		assert.Zero(t, llm.calls)
	})

	t.Run("acota y aplica como margen", func(t *testing.T) {
		ws, repo := newWorkspace(t, nil)
		uc := usecase.NewAIUseCase(&stubSuggester{value: 250}, usecase.NewMarginUseCase(ws), nil, nil, time.Second)

		got, err := uc.SuggestMargin(ctx, dto.MarginSuggestionRequest{Cost: 42, ApplyTo: "online"})
		require.NoError(t, err)
		assert.Equal(t, 100.0, got.SuggestedMarginPct)
		require.NotNil(t, got.Applied)
		assert.True(t, got.Applied.Changed)
		require.Len(t, repo.stored().Margins, 1)
		assert.Equal(t, entity.ChannelOnline, repo.stored().Margins[0].Type)
	})

	t.Run("error del servicio", func(t *testing.T) {
		uc := usecase.NewAIUseCase(&stubSuggester{err: errors.New("503")}, nil, nil, nil, 0)
		_, err := uc.SuggestMargin(ctx, dto.MarginSuggestionRequest{Cost: 10})
		assert.ErrorIs(t, err, domain.ErrSuggestionUnavailable)
	})

	t.Run("sin proveedor", func(t *testing.T) {
		uc := usecase.NewAIUseCase(nil, nil, nil, nil, 0)
		_, err := uc.SuggestMargin(ctx, dto.MarginSuggestionRequest{Cost: 10})
		assert.ErrorIs(t, err, domain.ErrSuggestionUnavailable)
	})
}

func TestClampMargin(t *testing.T) {
	assert.Equal(t, 5.0, usecase.ClampMargin(1))
	assert.Equal(t, 37.5, usecase.ClampMargin(37.5))
	assert.Equal(t, 100.0, usecase.ClampMargin(180))
}

type captureExporter struct{ rows int }

func (c *captureExporter) PricingWorkbook(t report.Table) ([]byte, error) {
	c.rows = t.RowCount()
	return []byte("xlsx"), nil
}

func (c *captureExporter) PriceListPDF(t report.Table, title string) ([]byte, error) {
	c.rows = t.RowCount()
	return []byte(title), nil
}

func TestExport_UsesCurrentTable(t *testing.T) {
	doc := entity.DefaultDocument()
	doc.Products = []entity.Product{{ID: "p1", Name: "Pide", Recipe: []entity.RecipeItem{}}}
	ws, _ := newWorkspace(t, doc)
	exp := &captureExporter{}
	uc := usecase.NewExportUseCase(usecase.NewPricingUseCase(ws), exp, exp)

	out, err := uc.PriceListPDF(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultPriceListTitle, string(out))
	assert.Equal(t, 1, exp.rows)

	_, err = uc.PricingWorkbook(context.Background())
	require.NoError(t, err)
}
