package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
	"github.com/jhoicas/inventory-alerts/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: empresa C con un producto P (umbral 20) en la bodega W.
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyC     = "11111111-1111-1111-1111-111111111111"
	otherCompany = "99999999-9999-9999-9999-999999999999"
	warehouseW   = "22222222-2222-2222-2222-222222222222"
	warehouseB   = "22222222-2222-2222-2222-bbbbbbbbbbbb"
	supplierS    = "33333333-3333-3333-3333-333333333333"
	productP     = "44444444-4444-4444-4444-444444444444"
	inventoryPW  = "55555555-5555-5555-5555-555555555555"
)

var evalTime = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return evalTime }

func newFixture(t *testing.T, quantity, threshold int) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	store.AddWarehouse(entity.Warehouse{ID: warehouseW, Name: "Bodega Norte"})
	store.AddSupplier(entity.Supplier{ID: supplierS, Name: "Distribuidora Andina"})
	store.AddProduct(entity.Product{
		ID: productP, CompanyID: companyC, SupplierID: supplierS,
		SKU: "SKU-P", Name: "Producto P", Price: decimal.NewFromInt(1000),
		LowStockThreshold: threshold,
	})
	store.AddInventory(entity.Inventory{ID: inventoryPW, ProductID: productP, WarehouseID: warehouseW, Quantity: quantity})
	return store
}

func addSale(store *memory.Store, inventoryID string, qty int, daysAgo float64) {
	store.AddEvent(entity.InventoryEvent{
		ID:               fmt.Sprintf("%s-%d-%v", inventoryID, qty, daysAgo),
		InventoryID:      inventoryID,
		EventType:        entity.EventTypeSale,
		Delta:            entity.DeltaDec,
		QuantityPerEvent: qty,
		CreatedAt:        evalTime.Add(-time.Duration(daysAgo * float64(24*time.Hour))),
	})
}

func newUseCase(repo repository.LowStockRepository) *inventory.LowStockAlertUseCase {
	return inventory.NewLowStockAlertUseCase(repo, 30, logger.Nop()).WithClock(fixedClock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

// Stock 15 < umbral 20, tres ventas de 2 en la ventana → tasa 0.2/día → 75 días.
func TestGetLowStockAlerts_EscenarioBase(t *testing.T) {
	store := newFixture(t, 15, 20)
	addSale(store, inventoryPW, 2, 1)
	addSale(store, inventoryPW, 2, 10)
	addSale(store, inventoryPW, 2, 29)

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, 1, res.TotalAlerts)

	a := res.Alerts[0]
	assert.Equal(t, productP, a.ProductID)
	assert.Equal(t, "Producto P", a.ProductName)
	assert.Equal(t, "SKU-P", a.SKU)
	assert.Equal(t, warehouseW, a.WarehouseID)
	assert.Equal(t, "Bodega Norte", a.WarehouseName)
	assert.Equal(t, 15, a.CurrentStock)
	assert.Equal(t, 20, a.Threshold)
	assert.Equal(t, int64(75), a.DaysUntilStockout)
	assert.Equal(t, supplierS, a.Supplier.ID)
	assert.Equal(t, "Distribuidora Andina", a.Supplier.Name)
}

// Sin ventas en la ventana no hay alerta aunque el stock esté bajo umbral.
func TestGetLowStockAlerts_SinVentasSuprime(t *testing.T) {
	store := newFixture(t, 15, 20)

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
	assert.Equal(t, 0, res.TotalAlerts)
	assert.NotNil(t, res.Alerts, "la lista vacía debe serializarse como [] y no como null")
}

// Empresa desconocida → {alerts: [], total_alerts: 0}, sin error.
func TestGetLowStockAlerts_EmpresaDesconocida(t *testing.T) {
	store := newFixture(t, 15, 20)
	addSale(store, inventoryPW, 2, 1)

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), otherCompany)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
	assert.Equal(t, 0, res.TotalAlerts)
}

func TestGetLowStockAlerts_CompanyIDInvalido(t *testing.T) {
	_, err := newUseCase(memory.NewStore()).GetLowStockAlerts(context.Background(), "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

// Cantidad igual al umbral NO es bajo stock.
func TestGetLowStockAlerts_IgualAlUmbralNoAlerta(t *testing.T) {
	store := newFixture(t, 20, 20)
	addSale(store, inventoryPW, 5, 1)

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
}

func TestGetLowStockAlerts_SobreUmbralNoAlerta(t *testing.T) {
	store := newFixture(t, 50, 20)
	addSale(store, inventoryPW, 5, 1)

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
}

// Una venta de hace 31 días no cuenta: el único movimiento queda fuera de la ventana → sin alerta.
func TestGetLowStockAlerts_VentaFueraDeVentana(t *testing.T) {
	store := newFixture(t, 15, 20)
	addSale(store, inventoryPW, 10, 31)

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
}

// Ventas dentro y fuera de la ventana: solo suman las de dentro.
func TestGetLowStockAlerts_SoloVentasDeLaVentana(t *testing.T) {
	store := newFixture(t, 10, 20)
	addSale(store, inventoryPW, 90, 5)   // dentro: tasa 3/día
	addSale(store, inventoryPW, 300, 31) // fuera

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, int64(3), res.Alerts[0].DaysUntilStockout, "10 / 3.0 = 3.33 → 3 por truncamiento")
}

// Reposiciones, ajustes y ventas con delta inc nunca cuentan como ventas.
func TestGetLowStockAlerts_EventosQueNoSonVenta(t *testing.T) {
	store := newFixture(t, 15, 20)
	for i, e := range []struct{ typ, delta string }{
		{entity.EventTypeRestock, entity.DeltaInc},
		{entity.EventTypeAdjustment, entity.DeltaDec},
		{entity.EventTypeReturn, entity.DeltaInc},
		{entity.EventTypeSale, entity.DeltaInc},
	} {
		store.AddEvent(entity.InventoryEvent{
			ID:               string(rune('a' + i)),
			InventoryID:      inventoryPW,
			EventType:        e.typ,
			Delta:            e.delta,
			QuantityPerEvent: 50,
			CreatedAt:        evalTime.Add(-time.Hour),
		})
	}

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
}

// Una venta con fecha posterior a la evaluación (reloj desfasado, importación) no cuenta.
func TestGetLowStockAlerts_VentaFuturaNoCuenta(t *testing.T) {
	store := newFixture(t, 15, 20)
	addSale(store, inventoryPW, 30, -1) // mañana

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)

	addSale(store, inventoryPW, 6, 0) // exactamente en la evaluación: cuenta
	res, err = newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, int64(75), res.Alerts[0].DaysUntilStockout)
}

// Stock negativo con ventas recientes → días negativos, sin recorte.
func TestGetLowStockAlerts_StockNegativo(t *testing.T) {
	store := newFixture(t, -3, 20)
	addSale(store, inventoryPW, 30, 2) // tasa 1/día

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, int64(-3), res.Alerts[0].DaysUntilStockout)
}

// Otro tenant con ventas sobre su propio inventario no afecta a la empresa C.
func TestGetLowStockAlerts_AisladoPorEmpresa(t *testing.T) {
	store := newFixture(t, 15, 20)
	store.AddProduct(entity.Product{ID: "p-otra", CompanyID: otherCompany, SupplierID: supplierS, SKU: "SKU-P", Name: "Ajeno", LowStockThreshold: 100})
	store.AddInventory(entity.Inventory{ID: "inv-otra", ProductID: "p-otra", WarehouseID: warehouseW, Quantity: 1})
	addSale(store, "inv-otra", 30, 1)

	res, err := newUseCase(store).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
}

// Orden determinista: bodega, luego producto. total_alerts = len(alerts).
func TestGetLowStockAlerts_OrdenDeterminista(t *testing.T) {
	store := newFixture(t, 15, 20)
	store.AddWarehouse(entity.Warehouse{ID: warehouseB, Name: "Bodega Centro"})
	store.AddProduct(entity.Product{ID: "p-a", CompanyID: companyC, SupplierID: supplierS, SKU: "SKU-A", Name: "Arroz", LowStockThreshold: 10})
	store.AddProduct(entity.Product{ID: "p-z", CompanyID: companyC, SupplierID: supplierS, SKU: "SKU-Z", Name: "Zanahoria", LowStockThreshold: 10})
	store.AddInventory(entity.Inventory{ID: "inv-a-norte", ProductID: "p-a", WarehouseID: warehouseW, Quantity: 1})
	store.AddInventory(entity.Inventory{ID: "inv-z-centro", ProductID: "p-z", WarehouseID: warehouseB, Quantity: 1})
	store.AddInventory(entity.Inventory{ID: "inv-a-centro", ProductID: "p-a", WarehouseID: warehouseB, Quantity: 2})
	for _, id := range []string{inventoryPW, "inv-a-norte", "inv-z-centro", "inv-a-centro"} {
		addSale(store, id, 3, 1)
	}

	uc := newUseCase(store)
	first, err := uc.GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	require.Len(t, first.Alerts, 4)
	assert.Equal(t, len(first.Alerts), first.TotalAlerts)

	got := make([]string, 0, len(first.Alerts))
	for _, a := range first.Alerts {
		got = append(got, a.WarehouseName+"/"+a.ProductName)
	}
	assert.Equal(t, []string{
		"Bodega Centro/Arroz",
		"Bodega Centro/Zanahoria",
		"Bodega Norte/Arroz",
		"Bodega Norte/Producto P",
	}, got)

	for i := 0; i < 5; i++ {
		again, err := uc.GetLowStockAlerts(context.Background(), companyC)
		require.NoError(t, err)
		assert.Equal(t, first, again, "mismo estado → misma respuesta")
	}
}

// La ventana configurada se aplica: con 7 días, una venta de hace 10 días no cuenta.
func TestGetLowStockAlerts_VentanaConfigurable(t *testing.T) {
	store := newFixture(t, 15, 20)
	addSale(store, inventoryPW, 7, 10)

	uc := inventory.NewLowStockAlertUseCase(store, 7, logger.Nop()).WithClock(fixedClock)
	res, err := uc.GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)

	addSale(store, inventoryPW, 7, 3) // tasa 1/día en 7 días
	res, err = uc.GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, int64(15), res.Alerts[0].DaysUntilStockout)
}

func TestNewLowStockAlertUseCase_VentanaPorDefecto(t *testing.T) {
	uc := inventory.NewLowStockAlertUseCase(memory.NewStore(), 0, nil)
	assert.Equal(t, 30, uc.WindowDays())
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de infraestructura
// ──────────────────────────────────────────────────────────────────────────────

type failingRepo struct {
	listErr  error
	salesErr error
	since    time.Time
	until    time.Time
}

func (f *failingRepo) ListBelowThreshold(ctx context.Context, _ string) ([]repository.LowStockCandidate, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []repository.LowStockCandidate{{InventoryID: "x", CurrentStock: 1, Threshold: 5}}, nil
}

func (f *failingRepo) SumRecentSales(_ context.Context, _ string, since, until time.Time) (map[string]int64, error) {
	f.since, f.until = since, until
	if f.salesErr != nil {
		return nil, f.salesErr
	}
	return map[string]int64{"x": 30}, nil
}

func TestGetLowStockAlerts_PropagaErrorDeCandidatos(t *testing.T) {
	boom := errors.New("conexión rechazada")
	_, err := newUseCase(&failingRepo{listErr: boom}).GetLowStockAlerts(context.Background(), companyC)
	assert.ErrorIs(t, err, boom)
}

func TestGetLowStockAlerts_PropagaErrorDeVentas(t *testing.T) {
	boom := errors.New("timeout de consulta")
	_, err := newUseCase(&failingRepo{salesErr: boom}).GetLowStockAlerts(context.Background(), companyC)
	assert.ErrorIs(t, err, boom)
}

// La ventana va de 30 días antes de la evaluación hasta la evaluación misma.
func TestGetLowStockAlerts_LimitesDeVentana(t *testing.T) {
	repo := &failingRepo{}
	res, err := newUseCase(repo).GetLowStockAlerts(context.Background(), companyC)
	require.NoError(t, err)
	assert.Equal(t, evalTime.Add(-30*24*time.Hour), repo.since)
	assert.Equal(t, evalTime, repo.until)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, int64(1), res.Alerts[0].DaysUntilStockout)
}
