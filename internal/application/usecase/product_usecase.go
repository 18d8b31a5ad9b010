package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-alerts/internal/application/dto"
	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
)

// ProductUseCase alta de productos. El stock inicial se crea junto con el producto.
type ProductUseCase struct {
	txRunner      inventory.TxRunner
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	now           func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ProductUseCase) WithClock(now func() time.Time) *ProductUseCase {
	uc.now = now
	return uc
}

// Create crea el producto y su fila de inventario en la bodega indicada dentro de una sola transacción.
// Devuelve domain.ErrDuplicate si el SKU ya existe en la empresa y domain.ErrNotFound si la bodega
// o el proveedor no existen.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductCreatedResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if in.Name == "" || in.SKU == "" || in.WarehouseID == "" || in.SupplierID == "" || in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.InitialQuantity < 0 || in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	sup, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now().UTC()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		SupplierID:        in.SupplierID,
		SKU:               in.SKU,
		Name:              in.Name,
		Price:             *in.Price,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	inv := &entity.Inventory{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.InitialQuantity,
		UpdatedAt:   now,
	}

	// Producto + inventario se confirman juntos; cualquier error hace Rollback.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.InventoryEventRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return inventoryRepo.Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ProductCreatedResponse{
		Message:     "producto creado",
		ProductID:   product.ID,
		InventoryID: inv.ID,
		SKU:         product.SKU,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
	}, nil
}
