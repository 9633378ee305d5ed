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

// defaultCategoryColor color de la UI cuando no se indica uno.
const defaultCategoryColor = "#6b7280"

// CategoryUseCase CRUD de categorías.
type CategoryUseCase struct {
	ws *WorkspaceUseCase
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(ws *WorkspaceUseCase) *CategoryUseCase {
	return &CategoryUseCase{ws: ws}
}

// List categorías en el orden de la lista.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{Items: make([]dto.CategoryResponse, 0, len(doc.Categories))}
	for _, c := range doc.Categories {
		out.Items = append(out.Items, dto.ToCategoryResponse(c))
	}
	return out, nil
}

// Create agrega una categoría al final.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	c := entity.Category{ID: uuid.New().String(), Name: name, Color: strings.TrimSpace(in.Color)}
	if c.Color == "" {
		c.Color = defaultCategoryColor
	}
	_, err := uc.ws.Mutate(ctx, "category.create", func(doc *entity.Document) (bool, error) {
		doc.Categories = append(doc.Categories, c)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(c)
	return &resp, nil
}

// Update cambia nombre y color. Un campo vacío se mantiene.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	var updated entity.Category
	_, err := uc.ws.Mutate(ctx, "category.update", func(doc *entity.Document) (bool, error) {
		i := doc.CategoryIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		c := &doc.Categories[i]
		if name := strings.TrimSpace(in.Name); name != "" {
			c.Name = name
		}
		if color := strings.TrimSpace(in.Color); color != "" {
			c.Color = color
		}
		updated = *c
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(updated)
	return &resp, nil
}

// Delete elimina la categoría; sus productos pasan a "sin categoría".
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	_, err := uc.ws.Mutate(ctx, "category.delete", func(doc *entity.Document) (bool, error) {
		i := doc.CategoryIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
		for j := range doc.Products {
			if doc.Products[j].CategoryID == id {
				doc.Products[j].CategoryID = ""
			}
		}
		return true, nil
	})
	return err
}
