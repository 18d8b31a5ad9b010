package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una empresa.
// El stock no vive aquí: se maneja por bodega en Inventory.
type Product struct {
	ID                string
	CompanyID         string
	SupplierID        string
	SKU               string // único por empresa
	Name              string
	Price             decimal.Decimal
	LowStockThreshold int // umbral de alerta; stock < umbral = bajo stock
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
