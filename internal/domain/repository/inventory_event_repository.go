package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
)

// InventoryEventRepository puerto de persistencia del log append-only de eventos.
type InventoryEventRepository interface {
	Create(ctx context.Context, event *entity.InventoryEvent) error
}
