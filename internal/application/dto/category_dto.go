package dto

import "github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"

// CategoryRequest alta o edición de categoría.
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryListResponse categorías en orden de lista.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// ToCategoryResponse mapea la entidad.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color}
}
