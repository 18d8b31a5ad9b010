package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-alerts/internal/application/dto"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Mensajes por defecto; cada handler puede sobrescribir el de NOT_FOUND/CONFLICT con los suyos.
var defaultMappings = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", "datos inválidos"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado al recurso"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "recurso duplicado"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock insuficiente"},
}

// writeError traduce errores de dominio a HTTP. Cualquier otro error es 500 con mensaje genérico
// y la causa se registra en el log (nunca se expone al cliente).
func writeError(c *fiber.Ctx, log *logger.Logger, err error, overrides map[error]string) error {
	for _, m := range defaultMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.message
		if o, ok := overrides[m.target]; ok {
			msg = o
		}
		return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
}
