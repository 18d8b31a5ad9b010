package inventory

import "github.com/shopspring/decimal"

// DefaultSalesWindowDays ventana de ventas recientes usada para estimar la velocidad de consumo.
const DefaultSalesWindowDays = 30

// StockoutProjection resultado de proyectar el agotamiento de un inventario.
type StockoutProjection struct {
	TotalSales        int64
	DailyRate         decimal.Decimal // unidades vendidas por día en la ventana
	DaysUntilStockout int64
}

// ProjectStockout servicio de dominio: estima en cuántos días se agota el stock al ritmo de venta reciente.
//
//	DailyRate         = totalSales / windowDays
//	DaysUntilStockout = trunc(currentStock / DailyRate) = trunc(currentStock * windowDays / totalSales)
//
// Devuelve ok=false (sin alerta) si no hubo ventas en la ventana o si la tasa diaria resulta cero.
// La división se hace en enteros para que el truncamiento sea exacto; un stock negativo
// produce días negativos y se devuelve sin ajustar.
func ProjectStockout(currentStock int, totalSales int64, windowDays int) (StockoutProjection, bool) {
	if totalSales <= 0 || windowDays <= 0 {
		return StockoutProjection{}, false
	}
	rate := decimal.NewFromInt(totalSales).Div(decimal.NewFromInt(int64(windowDays)))
	// Regla independiente de la anterior: nunca dividir por una tasa nula.
	if rate.IsZero() {
		return StockoutProjection{}, false
	}
	days := int64(currentStock) * int64(windowDays) / totalSales
	return StockoutProjection{
		TotalSales:        totalSales,
		DailyRate:         rate,
		DaysUntilStockout: days,
	}, true
}

// IsLowStock indica si la cantidad está estrictamente por debajo del umbral.
func IsLowStock(quantity, threshold int) bool {
	return quantity < threshold
}
