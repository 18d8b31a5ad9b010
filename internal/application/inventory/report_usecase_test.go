package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/internal/infrastructure/memory"
)

type stubGenerator struct {
	got *inventory.LowStockReport
	err error
}

func (s *stubGenerator) GenerateLowStockReport(_ context.Context, r inventory.LowStockReport) ([]byte, error) {
	s.got = &r
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-stub"), nil
}

func TestDownloadLowStockReport(t *testing.T) {
	store := newFixture(t, 15, 20)
	addSale(store, inventoryPW, 6, 2)
	gen := &stubGenerator{}

	uc := inventory.NewLowStockReportUseCase(newUseCase(store), gen).WithClock(fixedClock)
	pdf, filename, err := uc.DownloadLowStockReport(context.Background(), companyC)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	assert.Equal(t, "alertas-stock-20260331.pdf", filename)

	require.NotNil(t, gen.got)
	assert.Equal(t, companyC, gen.got.CompanyID)
	assert.Equal(t, "31/03/2026 12:00", gen.got.GeneratedAt)
	assert.Equal(t, 30, gen.got.WindowDays)
	require.Len(t, gen.got.Alerts, 1)
	assert.Equal(t, int64(75), gen.got.Alerts[0].DaysUntilStockout)
}

func TestDownloadLowStockReport_CompanyIDInvalido(t *testing.T) {
	gen := &stubGenerator{}
	uc := inventory.NewLowStockReportUseCase(newUseCase(memory.NewStore()), gen)

	_, _, err := uc.DownloadLowStockReport(context.Background(), "xyz")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, gen.got, "no se genera PDF si la consulta falla")
}

func TestDownloadLowStockReport_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("fuente no encontrada")
	uc := inventory.NewLowStockReportUseCase(newUseCase(newFixture(t, 15, 20)), &stubGenerator{err: boom})

	_, _, err := uc.DownloadLowStockReport(context.Background(), companyC)
	assert.ErrorIs(t, err, boom)
}
