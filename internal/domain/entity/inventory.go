package entity

import "time"

// Inventory es el stock de un producto en una bodega (una fila por par producto/bodega).
// Quantity puede quedar en cero o negativa si un escritor externo lo permite.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int
	UpdatedAt   time.Time
}
