package repository

import (
	"context"
	"time"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// ShipmentRepository describes persistence operations with shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error)
	GetByID(ctx context.Context, id int64) (*model.Shipment, error)
	GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Update(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error)
	Delete(ctx context.Context, id int64) error

	// OrdersAwaitingDispatch lists paid orders that have no shipment yet.
	OrdersAwaitingDispatch(ctx context.Context, limit int) ([]model.Order, error)
	// CreateForOrder inserts a preparing shipment for the order unless one
	// already exists. The bool reports whether a row was created.
	CreateForOrder(ctx context.Context, orderID int64, date time.Time) (*model.Shipment, bool, error)
}
