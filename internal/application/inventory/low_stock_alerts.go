package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventory-alerts/internal/application/dto"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	domaininv "github.com/jhoicas/inventory-alerts/internal/domain/inventory"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
	"github.com/jhoicas/inventory-alerts/pkg/logger"
)

// LowStockAlertUseCase calcula las alertas de bajo stock de una empresa:
// inventarios bajo umbral + proyección de días hasta agotarse según las ventas recientes.
// No guarda estado entre invocaciones; cada llamada es una foto del estado actual.
type LowStockAlertUseCase struct {
	repo       repository.LowStockRepository
	windowDays int
	now        func() time.Time
	log        *logger.Logger
}

// NewLowStockAlertUseCase construye el caso de uso. windowDays <= 0 usa la ventana por defecto (30 días).
func NewLowStockAlertUseCase(repo repository.LowStockRepository, windowDays int, log *logger.Logger) *LowStockAlertUseCase {
	if windowDays <= 0 {
		windowDays = domaininv.DefaultSalesWindowDays
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LowStockAlertUseCase{
		repo:       repo,
		windowDays: windowDays,
		now:        time.Now,
		log:        log.Component("low_stock_alerts"),
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *LowStockAlertUseCase) WithClock(now func() time.Time) *LowStockAlertUseCase {
	uc.now = now
	return uc
}

// WindowDays ventana de ventas configurada.
func (uc *LowStockAlertUseCase) WindowDays() int { return uc.windowDays }

// GetLowStockAlerts devuelve las alertas de la empresa y su total.
// Empresa desconocida o sin productos → lista vacía, no error.
// Los errores del repositorio se propagan sin reintentos ni resultados parciales.
func (uc *LowStockAlertUseCase) GetLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, domain.ErrInvalidInput
	}

	// La ventana termina en el instante de evaluación: eventos con fecha futura no cuentan.
	until := uc.now()
	since := until.Add(-time.Duration(uc.windowDays) * 24 * time.Hour)

	// Candidatos y ventas agregadas son consultas independientes: se lanzan en paralelo.
	var (
		candidates []repository.LowStockCandidate
		sales      map[string]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = uc.repo.ListBelowThreshold(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = uc.repo.SumRecentSales(gctx, companyID, since, until)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0, len(candidates))
	suppressed := 0
	for _, c := range candidates {
		// El repositorio ya filtra, pero el contrato de umbral estricto se respeta aquí también.
		if !domaininv.IsLowStock(c.CurrentStock, c.Threshold) {
			continue
		}
		projection, ok := domaininv.ProjectStockout(c.CurrentStock, sales[c.InventoryID], uc.windowDays)
		if !ok {
			suppressed++
			continue
		}
		alerts = append(alerts, toLowStockAlertDTO(c, projection.DaysUntilStockout))
	}

	sortAlerts(alerts)

	uc.log.Debug().
		Str("company_id", companyID).
		Int("candidates", len(candidates)).
		Int("suppressed", suppressed).
		Int("alerts", len(alerts)).
		Msg("alertas de bajo stock calculadas")

	return &dto.LowStockAlertsResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}, nil
}

func toLowStockAlertDTO(c repository.LowStockCandidate, days int64) dto.LowStockAlertDTO {
	return dto.LowStockAlertDTO{
		ProductID:         c.ProductID,
		ProductName:       c.ProductName,
		SKU:               c.SKU,
		WarehouseID:       c.WarehouseID,
		WarehouseName:     c.WarehouseName,
		CurrentStock:      c.CurrentStock,
		Threshold:         c.Threshold,
		DaysUntilStockout: days,
		Supplier: dto.SupplierRefDTO{
			ID:   c.SupplierID,
			Name: c.SupplierName,
		},
	}
}

// sortAlerts orden determinista: bodega, producto, y los IDs como desempate.
func sortAlerts(alerts []dto.LowStockAlertDTO) {
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.WarehouseName != b.WarehouseName {
			return a.WarehouseName < b.WarehouseName
		}
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.WarehouseID < b.WarehouseID
	})
}
