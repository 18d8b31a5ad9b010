// Package memory implementa los puertos de persistencia en memoria.
// Misma semántica que los adaptadores PostgreSQL; se usa como doble de prueba
// de los casos de uso y del router HTTP.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
)

var (
	_ repository.LowStockRepository  = (*Store)(nil)
	_ repository.WarehouseRepository = (*Store)(nil)
	_ repository.SupplierRepository  = supplierReader{}
	_ inventory.TxRunner             = (*Store)(nil)
)

type state struct {
	products    map[string]entity.Product
	warehouses  map[string]entity.Warehouse
	suppliers   map[string]entity.Supplier
	inventories map[string]entity.Inventory
	events      []entity.InventoryEvent
}

func newState() *state {
	return &state{
		products:    map[string]entity.Product{},
		warehouses:  map[string]entity.Warehouse{},
		suppliers:   map[string]entity.Supplier{},
		inventories: map[string]entity.Inventory{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.suppliers {
		c.suppliers[k] = v
	}
	for k, v := range s.inventories {
		c.inventories[k] = v
	}
	c.events = append([]entity.InventoryEvent(nil), s.events...)
	return c
}

// Store almacén en memoria seguro para uso concurrente.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// ── Carga de datos ────────────────────────────────────────────────────────────

// AddWarehouse registra una bodega.
func (s *Store) AddWarehouse(w entity.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.warehouses[w.ID] = w
}

// AddSupplier registra un proveedor.
func (s *Store) AddSupplier(sup entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.suppliers[sup.ID] = sup
}

// AddProduct registra un producto sin validar unicidad.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[p.ID] = p
}

// AddInventory registra una fila de inventario.
func (s *Store) AddInventory(inv entity.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.inventories[inv.ID] = inv
}

// AddEvent agrega un evento al log.
func (s *Store) AddEvent(e entity.InventoryEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.events = append(s.st.events, e)
}

// Inventory devuelve una fila de inventario por ID.
func (s *Store) Inventory(id string) (entity.Inventory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.st.inventories[id]
	return inv, ok
}

// Events copia del log de eventos.
func (s *Store) Events() []entity.InventoryEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.InventoryEvent(nil), s.st.events...)
}

// ProductCount número de productos almacenados.
func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.st.products)
}

// ── Lectura (LowStockRepository, WarehouseRepository, SupplierRepository) ─────

// ListBelowThreshold inventarios de la empresa con cantidad < umbral (join interno con bodega y proveedor).
func (s *Store) ListBelowThreshold(_ context.Context, companyID string) ([]repository.LowStockCandidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []repository.LowStockCandidate
	for _, inv := range s.st.inventories {
		p, ok := s.st.products[inv.ProductID]
		if !ok || p.CompanyID != companyID {
			continue
		}
		if inv.Quantity >= p.LowStockThreshold {
			continue
		}
		w, okW := s.st.warehouses[inv.WarehouseID]
		sup, okS := s.st.suppliers[p.SupplierID]
		if !okW || !okS {
			continue
		}
		out = append(out, repository.LowStockCandidate{
			InventoryID:   inv.ID,
			CurrentStock:  inv.Quantity,
			ProductID:     p.ID,
			ProductName:   p.Name,
			SKU:           p.SKU,
			Threshold:     p.LowStockThreshold,
			WarehouseID:   w.ID,
			WarehouseName: w.Name,
			SupplierID:    sup.ID,
			SupplierName:  sup.Name,
		})
	}
	return out, nil
}

// SumRecentSales suma quantity_per_event de las ventas (sale/dec) con since <= created_at <= until.
func (s *Store) SumRecentSales(_ context.Context, companyID string, since, until time.Time) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]int64{}
	for _, e := range s.st.events {
		if !e.IsSale() || e.CreatedAt.Before(since) || e.CreatedAt.After(until) {
			continue
		}
		inv, ok := s.st.inventories[e.InventoryID]
		if !ok {
			continue
		}
		if p, ok := s.st.products[inv.ProductID]; !ok || p.CompanyID != companyID {
			continue
		}
		out[e.InventoryID] += int64(e.QuantityPerEvent)
	}
	return out, nil
}

// GetByID implementa WarehouseRepository.
func (s *Store) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.st.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// Suppliers adaptador SupplierRepository sobre el mismo almacén.
func (s *Store) Suppliers() repository.SupplierRepository {
	return supplierReader{s}
}

type supplierReader struct{ s *Store }

func (r supplierReader) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.st.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

// ── Transacciones (inventory.TxRunner) ───────────────────────────────────────

// Run ejecuta fn sobre una copia del estado; si fn termina sin error la copia reemplaza al estado (Commit),
// si no, se descarta (Rollback). Las transacciones se serializan con el lock de escritura.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	eventRepo repository.InventoryEventRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.st.clone()
	if err := fn(txProducts{tx}, txInventory{tx}, txEvents{tx}); err != nil {
		return err
	}
	s.st = tx
	return nil
}

type txProducts struct{ st *state }

func (r txProducts) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.st.products {
		if existing.CompanyID == p.CompanyID && existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.st.products[p.ID] = *p
	return nil
}

func (r txProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.st.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type txInventory struct{ st *state }

func (r txInventory) Create(_ context.Context, inv *entity.Inventory) error {
	for _, existing := range r.st.inventories {
		if existing.ProductID == inv.ProductID && existing.WarehouseID == inv.WarehouseID {
			return domain.ErrDuplicate
		}
	}
	r.st.inventories[inv.ID] = *inv
	return nil
}

func (r txInventory) GetForUpdate(_ context.Context, id string) (*entity.Inventory, error) {
	inv, ok := r.st.inventories[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r txInventory) UpdateQuantity(_ context.Context, id string, quantity int, at time.Time) error {
	inv, ok := r.st.inventories[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Quantity = quantity
	inv.UpdatedAt = at
	r.st.inventories[id] = inv
	return nil
}

type txEvents struct{ st *state }

func (r txEvents) Create(_ context.Context, e *entity.InventoryEvent) error {
	r.st.events = append(r.st.events, *e)
	return nil
}
