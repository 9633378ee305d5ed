package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// IngredientUseCase alta, edición y baja de ingredientes de la lista global.
type IngredientUseCase struct {
	ws *WorkspaceUseCase
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(ws *WorkspaceUseCase) *IngredientUseCase {
	return &IngredientUseCase{ws: ws}
}

// List ingredientes por order.
func (uc *IngredientUseCase) List(ctx context.Context) (*dto.IngredientListResponse, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.IngredientListResponse{Items: make([]dto.IngredientResponse, 0, len(doc.Ingredients))}
	for _, ing := range doc.SortedIngredients() {
		out.Items = append(out.Items, dto.ToIngredientResponse(ing))
	}
	return out, nil
}

// Create agrega un ingrediente al final de la lista (order = max+1).
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	unit, err := entity.ParseUnit(in.Unit)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	ing := entity.Ingredient{ID: uuid.New().String(), Name: name, Unit: unit}
	if in.Price != nil {
		ing.Price = entity.PriceOf(in.Price.Float())
	}

	_, err = uc.ws.Mutate(ctx, "ingredient.create", func(doc *entity.Document) (bool, error) {
		ing.Order = doc.NextIngredientOrder()
		doc.Ingredients = append(doc.Ingredients, ing)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToIngredientResponse(ing)
	return &resp, nil
}

// Update edita nombre, precio y unidad. ClearPrice convierte el ingrediente en costo directo.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	var unit *entity.Unit
	if in.Unit != nil {
		u, err := entity.ParseUnit(*in.Unit)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
		unit = &u
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("name vacío: %w", domain.ErrInvalidInput)
	}

	var updated entity.Ingredient
	_, err := uc.ws.Mutate(ctx, "ingredient.update", func(doc *entity.Document) (bool, error) {
		i := doc.IngredientIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		ing := &doc.Ingredients[i]
		if in.Name != nil {
			ing.Name = strings.TrimSpace(*in.Name)
		}
		if unit != nil {
			ing.Unit = *unit
		}
		switch {
		case in.ClearPrice:
			ing.Price = nil
		case in.Price != nil:
			ing.Price = entity.PriceOf(in.Price.Float())
		}
		updated = *ing
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToIngredientResponse(updated)
	return &resp, nil
}

// UpdatePrice actualización rápida de precio desde el panel de precios.
func (uc *IngredientUseCase) UpdatePrice(ctx context.Context, id string, in dto.UpdateIngredientPriceRequest) (*dto.IngredientResponse, error) {
	price := in.Price
	return uc.Update(ctx, id, dto.UpdateIngredientRequest{Price: &price})
}

// Delete quita el ingrediente de la lista global. Las recetas conservan la referencia
// y el motor de costos la resuelve como aporte cero.
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	_, err := uc.ws.Mutate(ctx, "ingredient.delete", func(doc *entity.Document) (bool, error) {
		i := doc.IngredientIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		doc.Ingredients = append(doc.Ingredients[:i], doc.Ingredients[i+1:]...)
		return true, nil
	})
	return err
}
