package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
)

// IngredientHandler maneja las peticiones HTTP de ingredientes.
type IngredientHandler struct {
	uc *usecase.IngredientUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredients
// @Produce      json
// @Success      200  {object}  dto.IngredientListResponse
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "Datos del ingrediente"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
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
// @Summary      Editar ingrediente
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.UpdateIngredientRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePrice godoc
// @Summary      Actualización rápida de precio
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.UpdateIngredientPriceRequest  true  "Nuevo precio"
// @Success      200   {object}  dto.IngredientResponse
// @Router       /api/ingredients/{id}/price [patch]
func (h *IngredientHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdateIngredientPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdatePrice(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ingrediente
// @Description  Las recetas conservan la referencia y aportan 0 al costo.
// @Tags         ingredients
// @Param        id   path  string  true  "ID del ingrediente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
