package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos y recetas.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
// @Summary      Eliminar producto
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary      Guardar el orden arrastrado
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderProductsRequest  true  "IDs en el nuevo orden"
// @Success      200   {object}  dto.ProductListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/order [put]
func (h *ProductHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Reorder(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover producto de categoría
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.MoveProductRequest  true  "Categoría destino (vacío = sin categoría)"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/products/{id}/category [put]
func (h *ProductHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.MoveToCategory(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cost godoc
// @Summary      Desglose de costo por línea de receta
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CostBreakdownResponse
// @Router       /api/products/{id}/cost [get]
func (h *ProductHandler) Cost(c *fiber.Ctx) error {
	out, err := h.uc.CostBreakdown(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AttachIngredient godoc
// @Summary      Agregar ingrediente a la receta
// @Description  La línea empieza con cantidad 0; si ya existe no cambia nada.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AttachIngredientRequest  true  "Ingrediente"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/products/{id}/recipe [post]
func (h *ProductHandler) AttachIngredient(c *fiber.Ctx) error {
	var in dto.AttachIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AttachIngredient(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Cambiar cantidad de una línea de receta
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id            path  string  true  "ID del producto"
// @Param        ingredientId  path  string  true  "ID del ingrediente"
// @Param        body          body  dto.SetQuantityRequest  true  "Cantidad"
// @Success      200           {object}  dto.ProductResponse
// @Router       /api/products/{id}/recipe/{ingredientId} [put]
func (h *ProductHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetQuantity(c.UserContext(), c.Params("id"), c.Params("ingredientId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DetachIngredient godoc
// @Summary      Quitar ingrediente de la receta
// @Tags         recipes
// @Produce      json
// @Param        id            path  string  true  "ID del producto"
// @Param        ingredientId  path  string  true  "ID del ingrediente"
// @Success      200           {object}  dto.ProductResponse
// @Router       /api/products/{id}/recipe/{ingredientId} [delete]
func (h *ProductHandler) DetachIngredient(c *fiber.Ctx) error {
	out, err := h.uc.DetachIngredient(c.UserContext(), c.Params("id"), c.Params("ingredientId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
