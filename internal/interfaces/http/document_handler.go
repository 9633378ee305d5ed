package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
)

// DocumentHandler documento completo y tasas globales.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el documento completo
// @Tags         data
// @Produce      json
// @Success      200  {object}  entity.Document
// @Router       /api/data [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	doc, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

// Replace godoc
// @Summary      Reemplazar el documento completo
// @Description  Exige products, ingredients y las tres tasas. El último en escribir gana.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Document  true  "Documento"
// @Success      200   {object}  entity.Document
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/data [put]
func (h *DocumentHandler) Replace(c *fiber.Ctx) error {
	doc, err := h.uc.Replace(c.UserContext(), c.Body())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

// Rates godoc
// @Summary      Tasas vigentes
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.RatesResponse
// @Router       /api/settings/rates [get]
func (h *DocumentHandler) Rates(c *fiber.Ctx) error {
	out, err := h.uc.Rates(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateRates godoc
// @Summary      Actualizar tasas
// @Description  Comisiones en [0, 100) y KDV >= 0; fuera de rango responde 422 sin guardar.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RatesRequest  true  "Tasas (campos omitidos se mantienen)"
// @Success      200   {object}  dto.RatesResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/settings/rates [put]
func (h *DocumentHandler) UpdateRates(c *fiber.Ctx) error {
	var in dto.RatesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRates(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
