package entity

import "time"

// Tipos de evento de inventario.
const (
	EventTypeSale       = "sale"
	EventTypeRestock    = "restock"
	EventTypeAdjustment = "adjustment"
	EventTypeReturn     = "return"
)

// Dirección del evento.
const (
	DeltaInc = "inc"
	DeltaDec = "dec"
)

// InventoryEvent registro inmutable (append-only) de un cambio de inventario.
type InventoryEvent struct {
	ID               string
	InventoryID      string
	EventType        string
	Delta            string
	QuantityPerEvent int // magnitud positiva del evento
	CreatedAt        time.Time
}

// IsKnownEventType indica si t es uno de los tipos soportados.
func IsKnownEventType(t string) bool {
	switch t {
	case EventTypeSale, EventTypeRestock, EventTypeAdjustment, EventTypeReturn:
		return true
	}
	return false
}

// IsSale indica si el evento cuenta como venta para la velocidad de consumo.
func (e InventoryEvent) IsSale() bool {
	return e.EventType == EventTypeSale && e.Delta == DeltaDec
}
