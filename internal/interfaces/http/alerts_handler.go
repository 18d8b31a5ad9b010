package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

// AlertsHandler expone las alertas de bajo stock (JSON y PDF).
type AlertsHandler struct {
	alerts *inventory.LowStockAlertUseCase
	report *inventory.LowStockReportUseCase
	log    *logger.Logger
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(alerts *inventory.LowStockAlertUseCase, report *inventory.LowStockReportUseCase, log *logger.Logger) *AlertsHandler {
	return &AlertsHandler{alerts: alerts, report: report, log: log.Component("alerts_handler")}
}

var alertErrMessages = map[error]string{
	domain.ErrInvalidInput: "company_id debe ser un UUID válido",
}

// GetLowStockAlerts godoc
// @Summary      Alertas de bajo stock
// @Description  Productos bajo su umbral en cada bodega, con ventas en los últimos días y
//
//	días estimados hasta agotarse. Empresa sin datos → lista vacía.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        company_id  path  string  true  "ID de la empresa (UUID)"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertsHandler) GetLowStockAlerts(c *fiber.Ctx) error {
	res, err := h.alerts.GetLowStockAlerts(c.UserContext(), c.Params("company_id"))
	if err != nil {
		return writeError(c, h.log, err, alertErrMessages)
	}
	return c.JSON(res)
}

// DownloadLowStockReport godoc
// @Summary      Reporte PDF de alertas de bajo stock
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Param        company_id  path  string  true  "ID de la empresa (UUID)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/pdf [get]
func (h *AlertsHandler) DownloadLowStockReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.DownloadLowStockReport(c.UserContext(), c.Params("company_id"))
	if err != nil {
		return writeError(c, h.log, err, alertErrMessages)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
