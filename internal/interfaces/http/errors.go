package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
)

// writeError traduce los errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidDocument):
		status, code = fiber.StatusBadRequest, "INVALID_DOCUMENT"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrInvalidRate):
		status, code = fiber.StatusUnprocessableEntity, "INVALID_RATE"
	case errors.Is(err, domain.ErrNonPositiveCost):
		status, code = fiber.StatusUnprocessableEntity, "NON_POSITIVE_COST"
	case errors.Is(err, context.DeadlineExceeded):
		status, code = fiber.StatusRequestTimeout, "TIMEOUT"
	case errors.Is(err, domain.ErrSuggestionUnavailable):
		status, code = fiber.StatusServiceUnavailable, "AI_UNAVAILABLE"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
}
