package repository

import (
	"context"
	"time"
)

// LowStockCandidate fila cruda del repositorio: inventario bajo umbral con los datos
// de producto, bodega y proveedor necesarios para armar la alerta.
type LowStockCandidate struct {
	InventoryID   string
	CurrentStock  int
	ProductID     string
	ProductName   string
	SKU           string
	Threshold     int
	WarehouseID   string
	WarehouseName string
	SupplierID    string
	SupplierName  string
}

// LowStockRepository define las consultas de solo lectura del motor de alertas de bajo stock.
type LowStockRepository interface {
	// ListBelowThreshold devuelve los inventarios de productos de la empresa cuya cantidad
	// es estrictamente menor que el umbral del producto. Empresa desconocida = lista vacía.
	ListBelowThreshold(ctx context.Context, companyID string) ([]LowStockCandidate, error)

	// SumRecentSales agrega, por inventory_id, la cantidad vendida (event_type=sale, delta=dec)
	// con since <= created_at <= until. Los inventarios sin ventas no aparecen en el mapa.
	SumRecentSales(ctx context.Context, companyID string, since, until time.Time) (map[string]int64, error)
}
