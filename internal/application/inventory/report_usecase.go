package inventory

import (
	"context"
	"fmt"
	"time"
)

// LowStockReportUseCase genera el PDF con las alertas de bajo stock de una empresa.
// Reutiliza exactamente el mismo cálculo que el endpoint JSON.
type LowStockReportUseCase struct {
	alerts    *LowStockAlertUseCase
	generator LowStockReportGenerator
	now       func() time.Time
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(alerts *LowStockAlertUseCase, generator LowStockReportGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{alerts: alerts, generator: generator, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *LowStockReportUseCase) WithClock(now func() time.Time) *LowStockReportUseCase {
	uc.now = now
	return uc
}

// DownloadLowStockReport devuelve los bytes del PDF y el nombre de archivo sugerido.
// Los errores de validación (domain.ErrInvalidInput) y de infraestructura se propagan igual que en GetLowStockAlerts.
func (uc *LowStockReportUseCase) DownloadLowStockReport(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	res, err := uc.alerts.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, "", err
	}

	generatedAt := uc.now()
	pdfBytes, err = uc.generator.GenerateLowStockReport(ctx, LowStockReport{
		CompanyID:   companyID,
		GeneratedAt: generatedAt.Format("02/01/2006 15:04"),
		WindowDays:  uc.alerts.WindowDays(),
		Alerts:      res.Alerts,
	})
	if err != nil {
		return nil, "", fmt.Errorf("reporte bajo stock: %w", err)
	}
	return pdfBytes, fmt.Sprintf("alertas-stock-%s.pdf", generatedAt.Format("20060102")), nil
}
