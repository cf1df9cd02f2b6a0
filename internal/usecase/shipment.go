package usecase

import (
	"context"
	"time"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/domain/repository"
)

// ShipmentUseCase manages dispatch records. Status updates are permissive:
// there is no transition table, any status can follow any other.
type ShipmentUseCase struct {
	shipments repository.ShipmentRepository
}

// NewShipmentUseCase constructs ShipmentUseCase.
func NewShipmentUseCase(shipments repository.ShipmentRepository) *ShipmentUseCase {
	return &ShipmentUseCase{shipments: shipments}
}

func (u *ShipmentUseCase) Create(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	if shipment.ShipmentDate.IsZero() {
		shipment.ShipmentDate = time.Now()
	}
	if shipment.Status == "" {
		shipment.Status = model.ShipmentStatusPreparing
	}
	return u.shipments.Create(ctx, shipment)
}

func (u *ShipmentUseCase) GetByID(ctx context.Context, id int64) (*model.Shipment, error) {
	return u.shipments.GetByID(ctx, id)
}

func (u *ShipmentUseCase) GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	return u.shipments.GetByOrder(ctx, orderID)
}

func (u *ShipmentUseCase) List(ctx context.Context) ([]model.Shipment, error) {
	return u.shipments.List(ctx)
}

func (u *ShipmentUseCase) Update(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	return u.shipments.Update(ctx, shipment)
}

func (u *ShipmentUseCase) Delete(ctx context.Context, id int64) error {
	return u.shipments.Delete(ctx, id)
}

// OrdersAwaitingDispatch lists paid orders without a shipment, for the
// background dispatcher.
func (u *ShipmentUseCase) OrdersAwaitingDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	return u.shipments.OrdersAwaitingDispatch(ctx, limit)
}

// Dispatch creates the preparing shipment for an order if it does not have
// one yet.
func (u *ShipmentUseCase) Dispatch(ctx context.Context, orderID int64) (*model.Shipment, bool, error) {
	return u.shipments.CreateForOrder(ctx, orderID, time.Now())
}
