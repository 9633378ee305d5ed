package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/application/usecase"
)

// PricingHandler tabla de márgenes, cotizaciones y exportaciones.
type PricingHandler struct {
	uc     *usecase.PricingUseCase
	export *usecase.ExportUseCase
}

// NewPricingHandler construye el handler. export puede ser nil.
func NewPricingHandler(uc *usecase.PricingUseCase, export *usecase.ExportUseCase) *PricingHandler {
	return &PricingHandler{uc: uc, export: export}
}

// Table godoc
// @Summary      Tabla de precios por categoría y canal
// @Description  Los importes no finitos (tasas inválidas) salen como value=null y display="—".
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  dto.PricingTableResponse
// @Router       /api/pricing/table [get]
func (h *PricingHandler) Table(c *fiber.Ctx) error {
	out, err := h.uc.Table(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Cotizar (costo, margen, canal)
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Costo, margen y canal"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pricing/quote [post]
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Quote(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar tabla de precios (XLSX)
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/export/pricing.xlsx [get]
func (h *PricingHandler) ExportXLSX(c *fiber.Ctx) error {
	out, err := h.export.PricingWorkbook(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pricing.xlsx"`)
	return c.Send(out)
}

// ExportPDF godoc
// @Summary      Exportar lista de precios (PDF)
// @Tags         export
// @Produce      application/pdf
// @Param        title  query  string  false  "Título del documento"
// @Success      200
// @Router       /api/export/pricing.pdf [get]
func (h *PricingHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.export.PriceListPDF(c.UserContext(), c.Query("title"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="pricing.pdf"`)
	return c.Send(out)
}
