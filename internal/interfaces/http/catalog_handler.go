package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
)

// CategoryHandler CRUD de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Nombre y color"
// @Success      201   {object}  dto.CategoryResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Nombre y color"
// @Success      200   {object}  dto.CategoryResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Los productos de la categoría quedan sin categoría.
// @Tags         categories
// @Param        id   path  string  true  "ID de la categoría"
// @Success      204
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarginHandler columnas de margen por canal.
type MarginHandler struct {
	uc *usecase.MarginUseCase
}

// NewMarginHandler construye el handler.
func NewMarginHandler(uc *usecase.MarginUseCase) *MarginHandler {
	return &MarginHandler{uc: uc}
}

// List godoc
// @Summary      Listar márgenes por canal
// @Tags         margins
// @Produce      json
// @Success      200  {object}  dto.MarginColumnsResponse
// @Router       /api/margins [get]
func (h *MarginHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar margen
// @Description  Un par (valor, canal) repetido responde 200 con changed=false.
// @Tags         margins
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarginRequest  true  "Valor y canal"
// @Success      201   {object}  dto.MarginMutationResponse
// @Success      200   {object}  dto.MarginMutationResponse
// @Router       /api/margins [post]
func (h *MarginHandler) Create(c *fiber.Ctx) error {
	var in dto.MarginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if out.Changed {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar margen
// @Tags         margins
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del margen"
// @Param        body  body  dto.MarginRequest  true  "Valor y canal"
// @Success      200   {object}  dto.MarginMutationResponse
// @Router       /api/margins/{id} [put]
func (h *MarginHandler) Update(c *fiber.Ctx) error {
	var in dto.MarginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar margen
// @Tags         margins
// @Param        id   path  string  true  "ID del margen"
// @Success      204
// @Router       /api/margins/{id} [delete]
func (h *MarginHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
