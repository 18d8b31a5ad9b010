package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
)

var _ repository.LowStockRepository = (*LowStockRepo)(nil)

// LowStockRepo consultas de solo lectura para las alertas de bajo stock.
type LowStockRepo struct {
	q Querier
}

// NewLowStockRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLowStockRepository(q Querier) *LowStockRepo {
	return &LowStockRepo{q: q}
}

// ListBelowThreshold inventarios de la empresa con quantity < low_stock_threshold.
// Los joins son internos: una fila sin bodega o proveedor no es candidata.
func (r *LowStockRepo) ListBelowThreshold(ctx context.Context, companyID string) ([]repository.LowStockCandidate, error) {
	const query = `
	SELECT
	    i.id,
	    i.quantity,
	    p.id,
	    p.name,
	    p.sku,
	    p.low_stock_threshold,
	    w.id,
	    w.name,
	    s.id,
	    s.name
	FROM inventory i
	JOIN products   p ON p.id = i.product_id
	JOIN warehouses w ON w.id = i.warehouse_id
	JOIN suppliers  s ON s.id = p.supplier_id
	WHERE p.company_id = $1
	  AND i.quantity < p.low_stock_threshold`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list below threshold: %w", err)
	}
	defer rows.Close()

	var list []repository.LowStockCandidate
	for rows.Next() {
		var c repository.LowStockCandidate
		if err := rows.Scan(
			&c.InventoryID, &c.CurrentStock,
			&c.ProductID, &c.ProductName, &c.SKU, &c.Threshold,
			&c.WarehouseID, &c.WarehouseName,
			&c.SupplierID, &c.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan low stock candidate: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SumRecentSales total vendido por inventario en [since, until], solo eventos sale/dec.
// Una sola consulta agrupada para toda la empresa.
func (r *LowStockRepo) SumRecentSales(ctx context.Context, companyID string, since, until time.Time) (map[string]int64, error) {
	const query = `
	SELECT e.inventory_id, COALESCE(SUM(e.quantity_per_event), 0)::BIGINT
	FROM inventory_events e
	JOIN inventory i ON i.id = e.inventory_id
	JOIN products  p ON p.id = i.product_id
	WHERE p.company_id = $1
	  AND e.event_type = $2
	  AND e.delta      = $3
	  AND e.created_at >= $4
	  AND e.created_at <= $5
	GROUP BY e.inventory_id`

	rows, err := r.q.Query(ctx, query, companyID, entity.EventTypeSale, entity.DeltaDec, since, until)
	if err != nil {
		return nil, fmt.Errorf("sum recent sales: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			inventoryID string
			total       int64
		)
		if err := rows.Scan(&inventoryID, &total); err != nil {
			return nil, fmt.Errorf("scan recent sales: %w", err)
		}
		out[inventoryID] = total
	}
	return out, rows.Err()
}
