package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-alerts/internal/application/dto"
	"github.com/jhoicas/inventory-alerts/internal/domain"
	"github.com/jhoicas/inventory-alerts/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts/internal/domain/repository"
)

// RecordEventUseCase registra eventos de inventario (venta, reposición, ajuste, devolución)
// de forma transaccional: bloquea la fila de inventario, aplica el delta y agrega el evento al log.
type RecordEventUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewRecordEventUseCase construye el caso de uso.
func NewRecordEventUseCase(txRunner TxRunner) *RecordEventUseCase {
	return &RecordEventUseCase{txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *RecordEventUseCase) WithClock(now func() time.Time) *RecordEventUseCase {
	uc.now = now
	return uc
}

// RecordEvent valida la entrada y, dentro de una transacción:
// SELECT FOR UPDATE del inventario, verificación de empresa, nuevo stock y alta del evento.
func (uc *RecordEventUseCase) RecordEvent(ctx context.Context, companyID string, in dto.RecordEventRequest) (*dto.InventoryEventResponse, error) {
	if err := validateEvent(in); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	event := &entity.InventoryEvent{
		ID:               uuid.New().String(),
		InventoryID:      in.InventoryID,
		EventType:        in.EventType,
		Delta:            in.Delta,
		QuantityPerEvent: in.Quantity,
		CreatedAt:        now,
	}
	var newQty int

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		eventRepo repository.InventoryEventRepository,
	) error {
		inv, err := inventoryRepo.GetForUpdate(ctx, in.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByID(ctx, inv.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return domain.ErrForbidden
		}

		newQty = inv.Quantity
		if in.Delta == entity.DeltaInc {
			newQty += in.Quantity
		} else {
			if inv.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty -= in.Quantity
		}

		if err := inventoryRepo.UpdateQuantity(ctx, inv.ID, newQty, now); err != nil {
			return err
		}
		return eventRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	return &dto.InventoryEventResponse{
		ID:               event.ID,
		InventoryID:      event.InventoryID,
		EventType:        event.EventType,
		Delta:            event.Delta,
		QuantityPerEvent: event.QuantityPerEvent,
		NewQuantity:      newQty,
		CreatedAt:        event.CreatedAt,
	}, nil
}

func validateEvent(in dto.RecordEventRequest) error {
	if in.InventoryID == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if _, err := uuid.Parse(in.InventoryID); err != nil {
		return domain.ErrInvalidInput
	}
	if !entity.IsKnownEventType(in.EventType) {
		return domain.ErrInvalidInput
	}
	if in.Delta != entity.DeltaInc && in.Delta != entity.DeltaDec {
		return domain.ErrInvalidInput
	}
	// Una venta siempre descuenta y una reposición siempre suma.
	if in.EventType == entity.EventTypeSale && in.Delta != entity.DeltaDec {
		return domain.ErrInvalidInput
	}
	if in.EventType == entity.EventTypeRestock && in.Delta != entity.DeltaInc {
		return domain.ErrInvalidInput
	}
	return nil
}
