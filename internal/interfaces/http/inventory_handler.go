package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-alerts/internal/application/dto"
	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP de eventos de inventario (protegido).
type InventoryHandler struct {
	uc  *inventory.RecordEventUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RecordEventUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log.Component("inventory_handler")}
}

var inventoryErrMessages = map[error]string{
	domain.ErrNotFound: "inventario no encontrado",
}

// RecordEvent godoc
// @Summary      Registrar evento de inventario
// @Description  sale (dec), restock (inc), adjustment o return. Actualiza el stock y agrega el evento al log.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordEventRequest  true  "inventory_id, event_type, delta, quantity"
// @Success      201   {object}  dto.InventoryEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/events [post]
func (h *InventoryHandler) RecordEvent(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordEvent(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, h.log, err, inventoryErrMessages)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
