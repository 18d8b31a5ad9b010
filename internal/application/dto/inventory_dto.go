package dto

import "time"

// SupplierRefDTO referencia mínima al proveedor dentro de una alerta.
type SupplierRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LowStockAlertDTO alerta de bajo stock para un par producto/bodega.
// Los nombres JSON son contrato externo: no renombrar.
type LowStockAlertDTO struct {
	ProductID         string         `json:"product_id"`
	ProductName       string         `json:"product_name"`
	SKU               string         `json:"sku"`
	WarehouseID       string         `json:"warehouse_id"`
	WarehouseName     string         `json:"warehouse_name"`
	CurrentStock      int            `json:"current_stock"`
	Threshold         int            `json:"threshold"`
	DaysUntilStockout int64          `json:"days_until_stockout"`
	Supplier          SupplierRefDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta de GET /api/companies/{company_id}/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}

// RecordEventRequest body para POST /api/inventory/events.
type RecordEventRequest struct {
	InventoryID string `json:"inventory_id"`
	EventType   string `json:"event_type"` // sale, restock, adjustment, return
	Delta       string `json:"delta"`      // inc | dec
	Quantity    int    `json:"quantity"`
}

// InventoryEventResponse evento registrado y stock resultante.
type InventoryEventResponse struct {
	ID               string    `json:"id"`
	InventoryID      string    `json:"inventory_id"`
	EventType        string    `json:"event_type"`
	Delta            string    `json:"delta"`
	QuantityPerEvent int       `json:"quantity_per_event"`
	NewQuantity      int       `json:"new_quantity"`
	CreatedAt        time.Time `json:"created_at"`
}
