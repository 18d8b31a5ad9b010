package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
)

// InventoryRepository define el puerto para el stock por producto+bodega.
// Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve nil, nil si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id string, quantity int, at time.Time) error
}
