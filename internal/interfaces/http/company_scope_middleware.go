package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventory-alerts/internal/application/dto"
)

// RequireCompanyScope verifica que el :company_id de la ruta sea la empresa del token JWT.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 si no hay company_id en el contexto.
//   - 400 si el parámetro no es un UUID.
//   - 403 si el parámetro es otra empresa.
func RequireCompanyScope(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenCompany := GetCompanyID(c)
		if tokenCompany == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}

		pathCompany := c.Params(param)
		if _, err := uuid.Parse(pathCompany); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "company_id debe ser un UUID válido",
			})
		}
		if pathCompany != tokenCompany {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "acceso denegado a la empresa solicitada",
			})
		}
		return c.Next()
	}
}
