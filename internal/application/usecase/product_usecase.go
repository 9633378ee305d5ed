package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/costing"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// ProductUseCase casos de uso de productos y sus recetas.
type ProductUseCase struct {
	ws *WorkspaceUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(ws *WorkspaceUseCase) *ProductUseCase {
	return &ProductUseCase{ws: ws}
}

// List productos por order con su costo unitario.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	products := append([]entity.Product{}, doc.Products...)
	sort.SliceStable(products, func(i, j int) bool { return products[i].Order < products[j].Order })

	idx := costing.NewIngredientIndex(doc.Ingredients)
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Items = append(out.Items, dto.ToProductResponse(p, idx))
	}
	return out, nil
}

// GetByID devuelve un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := doc.ProductIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProductResponse(doc.Products[i], costing.NewIngredientIndex(doc.Ingredients))
	return &resp, nil
}

// Create crea un producto con receta vacía al final del orden.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	p := entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Recipe:      []entity.RecipeItem{},
		ManualCost:  entity.Number(in.ManualCost.Float()),
		StorePrice:  entity.Number(in.StorePrice.Float()),
		OnlinePrice: entity.Number(in.OnlinePrice.Float()),
	}
	return uc.mutateOne(ctx, "product.create", func(doc *entity.Document) (*entity.Product, error) {
		if in.CategoryID != "" {
			if doc.CategoryIndex(in.CategoryID) < 0 {
				return nil, fmt.Errorf("categoría %s: %w", in.CategoryID, domain.ErrNotFound)
			}
			p.CategoryID = in.CategoryID
		}
		p.Order = doc.NextProductOrder()
		doc.Products = append(doc.Products, p)
		return &doc.Products[len(doc.Products)-1], nil
	})
}

// Update edición en línea de nombre, costo manual y precios de lista.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("name vacío: %w", domain.ErrInvalidInput)
	}
	return uc.mutateProduct(ctx, "product.update", id, func(_ *entity.Document, p *entity.Product) error {
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.ManualCost != nil {
			p.ManualCost = entity.Number(in.ManualCost.Float())
		}
		if in.StorePrice != nil {
			p.StorePrice = entity.Number(in.StorePrice.Float())
		}
		if in.OnlinePrice != nil {
			p.OnlinePrice = entity.Number(in.OnlinePrice.Float())
		}
		return nil
	})
}

// Delete elimina el producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	_, err := uc.ws.Mutate(ctx, "product.delete", func(doc *entity.Document) (bool, error) {
		i := doc.ProductIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
		return true, nil
	})
	return err
}

// MoveToCategory cambia la categoría; categoryID vacío deja el producto sin categoría.
func (uc *ProductUseCase) MoveToCategory(ctx context.Context, id string, in dto.MoveProductRequest) (*dto.ProductResponse, error) {
	return uc.mutateProduct(ctx, "product.move", id, func(doc *entity.Document, p *entity.Product) error {
		if in.CategoryID != "" && doc.CategoryIndex(in.CategoryID) < 0 {
			return fmt.Errorf("categoría %s: %w", in.CategoryID, domain.ErrNotFound)
		}
		p.CategoryID = in.CategoryID
		return nil
	})
}

// Reorder persiste el orden arrastrado: order = posición en la lista recibida.
// La lista debe contener cada producto exactamente una vez.
func (uc *ProductUseCase) Reorder(ctx context.Context, in dto.ReorderProductsRequest) (*dto.ProductListResponse, error) {
	_, err := uc.ws.Mutate(ctx, "product.reorder", func(doc *entity.Document) (bool, error) {
		if len(in.ProductIDs) != len(doc.Products) {
			return false, fmt.Errorf("se esperaban %d productos, llegaron %d: %w", len(doc.Products), len(in.ProductIDs), domain.ErrInvalidInput)
		}
		seen := make(map[string]bool, len(in.ProductIDs))
		for order, id := range in.ProductIDs {
			i := doc.ProductIndex(id)
			if i < 0 {
				return false, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
			}
			if seen[id] {
				return false, fmt.Errorf("producto %s repetido: %w", id, domain.ErrInvalidInput)
			}
			seen[id] = true
			doc.Products[i].Order = order
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

// AttachIngredient agrega el ingrediente a la receta con cantidad 0. Si ya está, no hace nada.
func (uc *ProductUseCase) AttachIngredient(ctx context.Context, id string, in dto.AttachIngredientRequest) (*dto.ProductResponse, error) {
	if in.IngredientID == "" {
		return nil, fmt.Errorf("ingredient_id es obligatorio: %w", domain.ErrInvalidInput)
	}
	doc, err := uc.ws.Mutate(ctx, "recipe.attach", func(doc *entity.Document) (bool, error) {
		i := doc.ProductIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		if doc.IngredientIndex(in.IngredientID) < 0 {
			return false, fmt.Errorf("ingrediente %s: %w", in.IngredientID, domain.ErrNotFound)
		}
		p := &doc.Products[i]
		if p.RecipeIndex(in.IngredientID) >= 0 {
			return false, nil
		}
		p.Recipe = append(p.Recipe, entity.RecipeItem{IngredientID: in.IngredientID})
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(doc.Products[doc.ProductIndex(id)], costing.NewIngredientIndex(doc.Ingredients))
	return &resp, nil
}

// SetQuantity cambia la cantidad de una línea de receta.
func (uc *ProductUseCase) SetQuantity(ctx context.Context, id, ingredientID string, in dto.SetQuantityRequest) (*dto.ProductResponse, error) {
	return uc.mutateProduct(ctx, "recipe.quantity", id, func(_ *entity.Document, p *entity.Product) error {
		j := p.RecipeIndex(ingredientID)
		if j < 0 {
			return fmt.Errorf("línea %s: %w", ingredientID, domain.ErrNotFound)
		}
		p.Recipe[j].Quantity = entity.Number(in.Quantity.Float())
		return nil
	})
}

// DetachIngredient quita la línea de receta. Si la receta queda vacía el costo manual se
// reinicia a 0 para que el usuario lo cargue de nuevo.
func (uc *ProductUseCase) DetachIngredient(ctx context.Context, id, ingredientID string) (*dto.ProductResponse, error) {
	return uc.mutateProduct(ctx, "recipe.detach", id, func(_ *entity.Document, p *entity.Product) error {
		j := p.RecipeIndex(ingredientID)
		if j < 0 {
			return fmt.Errorf("línea %s: %w", ingredientID, domain.ErrNotFound)
		}
		p.Recipe = append(p.Recipe[:j], p.Recipe[j+1:]...)
		if len(p.Recipe) == 0 {
			p.ManualCost = 0
		}
		return nil
	})
}

// CostBreakdown desglose de costo por línea de receta.
func (uc *ProductUseCase) CostBreakdown(ctx context.Context, id string) (*dto.CostBreakdownResponse, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := doc.ProductIndex(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := doc.Products[i]
	idx := costing.NewIngredientIndex(doc.Ingredients)

	out := &dto.CostBreakdownResponse{
		ProductID:  p.ID,
		CostSource: "manual",
		Lines:      []dto.CostLineResponse{},
		Total:      dto.NewMoney(costing.UnitCost(p, idx)),
	}
	if p.HasRecipe() {
		out.CostSource = "recipe"
	}
	for _, l := range costing.Breakdown(p, idx) {
		out.Lines = append(out.Lines, dto.CostLineResponse{
			IngredientID: l.IngredientID,
			Name:         l.Name,
			Found:        l.Found,
			Basis:        l.Basis.String(),
			RecipeUnit:   l.Basis.RecipeUnitLabel(),
			Quantity:     l.Quantity,
			Cost:         dto.NewMoney(l.Cost),
		})
	}
	return out, nil
}

func (uc *ProductUseCase) mutateProduct(ctx context.Context, op, id string, fn func(doc *entity.Document, p *entity.Product) error) (*dto.ProductResponse, error) {
	return uc.mutateOne(ctx, op, func(doc *entity.Document) (*entity.Product, error) {
		i := doc.ProductIndex(id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		p := &doc.Products[i]
		if err := fn(doc, p); err != nil {
			return nil, err
		}
		return p, nil
	})
}

func (uc *ProductUseCase) mutateOne(ctx context.Context, op string, fn func(doc *entity.Document) (*entity.Product, error)) (*dto.ProductResponse, error) {
	var id string
	doc, err := uc.ws.Mutate(ctx, op, func(doc *entity.Document) (bool, error) {
		p, err := fn(doc)
		if err != nil {
			return false, err
		}
		id = p.ID
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(doc.Products[doc.ProductIndex(id)], costing.NewIngredientIndex(doc.Ingredients))
	return &resp, nil
}
