package inventory

import (
	"context"

	"github.com/jhoicas/inventory-alerts/internal/application/dto"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad en el camino de escritura (alta de productos, eventos de inventario).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		eventRepo repository.InventoryEventRepository,
	) error) error
}

// LowStockReportGenerator genera la representación imprimible (PDF) de las alertas de una empresa.
type LowStockReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, report LowStockReport) ([]byte, error)
}

// LowStockReport datos que necesita el generador del reporte.
type LowStockReport struct {
	CompanyID   string
	GeneratedAt string // fecha/hora ya formateada
	WindowDays  int
	Alerts      []dto.LowStockAlertDTO
}
