package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts/internal/domain/inventory"
)

// TestProjectStockout_Truncamiento: stock 10 con tasa 3/día → 3 días (no 3.33 ni 4).
func TestProjectStockout_Truncamiento(t *testing.T) {
	p, ok := inventory.ProjectStockout(10, 90, 30)
	require.True(t, ok)

	assert.True(t, p.DailyRate.Equal(decimal.NewFromInt(3)), "tasa diaria esperada 3, obtenida %s", p.DailyRate)
	assert.Equal(t, int64(3), p.DaysUntilStockout)
}

// TestProjectStockout_EscenarioBase: umbral 20, stock 15, 6 unidades vendidas en 30 días → 75 días.
func TestProjectStockout_EscenarioBase(t *testing.T) {
	p, ok := inventory.ProjectStockout(15, 6, 30)
	require.True(t, ok)

	assert.True(t, p.DailyRate.Equal(decimal.RequireFromString("0.2")))
	assert.Equal(t, int64(75), p.DaysUntilStockout)
	assert.Equal(t, int64(6), p.TotalSales)
}

// Con tasas periódicas (2/3 por día) la división entera evita el error de redondeo: 2 / (20/30) = 3 exacto.
func TestProjectStockout_TasaPeriodicaExacta(t *testing.T) {
	p, ok := inventory.ProjectStockout(2, 20, 30)
	require.True(t, ok)
	assert.Equal(t, int64(3), p.DaysUntilStockout)
}

func TestProjectStockout_SinVentasNoAlerta(t *testing.T) {
	_, ok := inventory.ProjectStockout(5, 0, 30)
	assert.False(t, ok, "sin ventas en la ventana no debe proyectarse agotamiento")
}

func TestProjectStockout_VentanaInvalidaNoAlerta(t *testing.T) {
	_, ok := inventory.ProjectStockout(5, 10, 0)
	assert.False(t, ok)
}

// Stock negativo se propaga como días negativos, sin recorte.
func TestProjectStockout_StockNegativo(t *testing.T) {
	p, ok := inventory.ProjectStockout(-6, 6, 30)
	require.True(t, ok)
	assert.Equal(t, int64(-30), p.DaysUntilStockout)
}

// El truncamiento es hacia cero también con stock negativo: -10 / 3 = -3.33 → -3.
func TestProjectStockout_StockNegativoTruncaHaciaCero(t *testing.T) {
	p, ok := inventory.ProjectStockout(-10, 90, 30)
	require.True(t, ok)
	assert.Equal(t, int64(-3), p.DaysUntilStockout)
}

func TestProjectStockout_StockCero(t *testing.T) {
	p, ok := inventory.ProjectStockout(0, 12, 30)
	require.True(t, ok)
	assert.Equal(t, int64(0), p.DaysUntilStockout)
}

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		threshold int
		want      bool
	}{
		{"debajo del umbral", 15, 20, true},
		{"igual al umbral no es bajo stock", 20, 20, false},
		{"encima del umbral", 25, 20, false},
		{"umbral cero", 0, 0, false},
		{"stock negativo con umbral cero", -1, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.IsLowStock(tc.quantity, tc.threshold))
		})
	}
}
