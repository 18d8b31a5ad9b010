package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// La empresa dueña se deriva de los productos que guarda.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
