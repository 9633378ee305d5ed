package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
)

// AIHandler maneja el endpoint de sugerencia de margen asistida por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SuggestMargin godoc
// @Summary      Sugerir margen de ganancia con IA
// @Description  Devuelve un porcentaje en [5, 100] para el costo dado. Un costo <= 0 se rechaza
// @Description  sin llamar al proveedor. Con apply_to (store|online) la sugerencia se agrega como margen.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarginSuggestionRequest  true  "Costo del producto"
// @Success      200   {object}  dto.MarginSuggestionResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/suggest-margin [post]
func (h *AIHandler) SuggestMargin(c *fiber.Ctx) error {
	var req dto.MarginSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SuggestMargin(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
