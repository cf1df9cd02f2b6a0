package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints and middleware.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, *model.User, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	UserFn         func(context.Context, int64) (*model.User, error)
}

// Register delegates to the configured function or echoes the user back.
func (s AuthFacadeStub) Register(ctx context.Context, user *model.User, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, user, password)
	}
	out := *user
	out.ID = 1
	out.Roles = []model.Role{model.RoleCustomer}
	return &out, "stub-token", nil
}

// Authenticate delegates to the configured function or accepts anything.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Roles: []model.Role{model.RoleCustomer}}, "stub-token", nil
}

// ParseToken delegates to the configured function or resolves user 1.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserByID delegates to the configured function or returns a plain customer.
func (s AuthFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Roles: []model.Role{model.RoleCustomer}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, int64, usecase.PlaceOrderRequest) (*model.Order, error)
	GetFn     func(context.Context, int64) (*model.Order, error)
	ListFn    func(context.Context) ([]model.Order, error)
	ByUserFn  func(context.Context, int64) ([]model.Order, error)
	ByRangeFn func(context.Context, time.Time, time.Time) ([]model.Order, error)
	UpdateFn  func(context.Context, int64, model.OrderPatch) (*model.Order, error)
	DeleteFn  func(context.Context, int64) error
}

// PlaceOrder delegates to the configured function or returns a paid order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, req usecase.PlaceOrderRequest) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, req)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPaid, OrderDate: time.Unix(0, 0)}, nil
}

// Order delegates to the configured function.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPaid, OrderDate: time.Unix(0, 0)}, nil
}

// Orders delegates to the configured function.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// OrdersByUser delegates to the configured function.
func (s OrderFacadeStub) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ByUserFn != nil {
		return s.ByUserFn(ctx, userID)
	}
	return nil, nil
}

// OrdersByDateRange delegates to the configured function.
func (s OrderFacadeStub) OrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	if s.ByRangeFn != nil {
		return s.ByRangeFn(ctx, start, end)
	}
	return nil, nil
}

// UpdateOrder delegates to the configured function.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return &model.Order{ID: id, OrderDate: time.Unix(0, 0)}, nil
}

// DeleteOrder delegates to the configured function.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// DispatchCall records one DispatchShipment invocation.
type DispatchCall struct {
	OrderID int64
}

// DispatchFacadeStub mimics dispatcher interactions with the store facade.
type DispatchFacadeStub struct {
	Batches    [][]model.Order
	BatchFn    func(context.Context, int) ([]model.Order, error)
	DispatchFn func(context.Context, int64) (*model.Shipment, bool, error)
	Dispatched []DispatchCall

	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *DispatchFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *DispatchFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersAwaitingShipment returns batches from the configured queue.
func (s *DispatchFacadeStub) OrdersAwaitingShipment(ctx context.Context, limit int) ([]model.Order, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// DispatchShipment records dispatch requests.
func (s *DispatchFacadeStub) DispatchShipment(ctx context.Context, orderID int64) (*model.Shipment, bool, error) {
	if s.DispatchFn != nil {
		return s.DispatchFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Dispatched = append(s.Dispatched, DispatchCall{OrderID: orderID})
	return &model.Shipment{ID: int64(len(s.Dispatched)), OrderID: orderID, Status: model.ShipmentStatusPreparing}, true, nil
}
