package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/domain/repository"
)

// PlaceOrderRequest is the cart a customer submits for placement.
type PlaceOrderRequest struct {
	ShippingAddress string
	PaymentMethod   string
	Items           []model.CartItem
}

// OrderUseCase encapsulates the order placement workflow and the order
// lifecycle operations around it.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// PlaceOrder validates the cart and hands it to the transactional repository
// workflow. Duplicate product ids stay separate line entries on purpose.
// On success the returned order carries its lines and a total equal to their
// subtotal sum; on failure nothing is persisted.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, userID int64, req PlaceOrderRequest) (*model.Order, error) {
	if strings.TrimSpace(req.ShippingAddress) == "" || strings.TrimSpace(req.PaymentMethod) == "" {
		return nil, domainErrors.ErrInvalidOrderRequest
	}
	if len(req.Items) == 0 {
		return nil, domainErrors.ErrInvalidOrderRequest
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidOrderRequest
		}
	}

	return u.orders.CreateFromCart(ctx, userID, req.ShippingAddress, req.PaymentMethod, req.Items)
}

// GetByID returns the order with its lines and shipment attached.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// ListByUser returns the order history of one user.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListByDateRange returns orders placed within the inclusive range. No
// matches means an empty slice, not an error; the boundary decides how to
// present that.
func (u *OrderUseCase) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	return u.orders.ListByDateRange(ctx, start, end)
}

// Update patches header fields only; the owner and the lines are never
// touched by updates.
func (u *OrderUseCase) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	return u.orders.Update(ctx, id, patch)
}

// Delete removes the order together with its lines and shipment.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}
