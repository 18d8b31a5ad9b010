package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Crea el producto y su inventario inicial en la bodega indicada.
type CreateProductRequest struct {
	Name              string           `json:"name"`
	SKU               string           `json:"sku"`
	Price             *decimal.Decimal `json:"price"`
	WarehouseID       string           `json:"warehouse_id"`
	SupplierID        string           `json:"supplier_id"`
	InitialQuantity   int              `json:"initial_quantity"`
	LowStockThreshold int              `json:"low_stock_threshold"`
}

// ProductCreatedResponse salida de la creación de producto.
type ProductCreatedResponse struct {
	Message     string          `json:"message"`
	ProductID   string          `json:"product_id"`
	InventoryID string          `json:"inventory_id"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}
