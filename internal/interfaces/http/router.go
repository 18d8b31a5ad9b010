package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/application/usecase"
	"github.com/jhoicas/inventory-alerts/pkg/jwt"
	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LowStockAlerts *inventory.LowStockAlertUseCase
	LowStockReport *inventory.LowStockReportUseCase
	RecordEvent    *inventory.RecordEventUseCase
	ProductUC      *usecase.ProductUseCase
	JWTSecret      string
	Logger         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", Health)

	// Todo lo que cuelga de /api requiere Bearer Token.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Alertas: solo la empresa del token
	alertsHandler := NewAlertsHandler(deps.LowStockAlerts, deps.LowStockReport, log)
	scope := RequireCompanyScope("company_id")
	api.Get("/companies/:company_id/alerts/low-stock", scope, alertsHandler.GetLowStockAlerts)
	api.Get("/companies/:company_id/alerts/low-stock/pdf", scope, alertsHandler.DownloadLowStockReport)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, log)
	api.Post("/products", RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero), productHandler.Create)

	// Inventory events
	inventoryHandler := NewInventoryHandler(deps.RecordEvent, log)
	api.Post("/inventory/events",
		RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero, jwt.RoleVendedor),
		inventoryHandler.RecordEvent,
	)
}

// Health godoc
// @Summary  Liveness
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
