package repository

import (
	"context"
	"time"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their
// lines. CreateFromCart is the transactional core: it reserves stock, builds
// the lines and reconciles the total inside one transaction, or leaves no
// trace at all.
type OrderRepository interface {
	CreateFromCart(ctx context.Context, userID int64, shippingAddress, paymentMethod string, items []model.CartItem) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error)
	Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}
