package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
)

var _ repository.InventoryEventRepository = (*InventoryEventRepo)(nil)

// InventoryEventRepo log de eventos de inventario (solo inserción).
type InventoryEventRepo struct {
	q Querier
}

// NewInventoryEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryEventRepository(q Querier) *InventoryEventRepo {
	return &InventoryEventRepo{q: q}
}

// Create agrega un evento al log.
func (r *InventoryEventRepo) Create(ctx context.Context, e *entity.InventoryEvent) error {
	query := `
		INSERT INTO inventory_events (id, inventory_id, event_type, delta, quantity_per_event, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, e.ID, e.InventoryID, e.EventType, e.Delta, e.QuantityPerEvent, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory event: %w", err)
	}
	return nil
}
