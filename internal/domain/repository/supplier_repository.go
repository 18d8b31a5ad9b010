package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura para Supplier.
type SupplierRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
}
