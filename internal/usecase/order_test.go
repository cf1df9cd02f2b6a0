package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
)

type stubOrderRepo struct {
	createCalls int
	lastItems   []model.CartItem
	order       *model.Order
	err         error
}

func (s *stubOrderRepo) CreateFromCart(ctx context.Context, userID int64, shippingAddress, paymentMethod string, items []model.CartItem) (*model.Order, error) {
	s.createCalls++
	s.lastItems = items
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return s.order, s.err
}

func (s *stubOrderRepo) List(ctx context.Context) ([]model.Order, error) { return nil, s.err }

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return nil, s.err
}

func (s *stubOrderRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	return []model.Order{}, s.err
}

func (s *stubOrderRepo) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	return s.order, s.err
}

func (s *stubOrderRepo) Delete(ctx context.Context, id int64) error { return s.err }

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"empty address", PlaceOrderRequest{ShippingAddress: "  ", PaymentMethod: "webpay", Items: []model.CartItem{{ProductID: 1, Quantity: 1}}}},
		{"empty payment", PlaceOrderRequest{ShippingAddress: "Av. Providencia 123", PaymentMethod: "", Items: []model.CartItem{{ProductID: 1, Quantity: 1}}}},
		{"no items", PlaceOrderRequest{ShippingAddress: "Av. Providencia 123", PaymentMethod: "webpay"}},
		{"zero quantity", PlaceOrderRequest{ShippingAddress: "Av. Providencia 123", PaymentMethod: "webpay", Items: []model.CartItem{{ProductID: 1, Quantity: 0}}}},
		{"negative quantity", PlaceOrderRequest{ShippingAddress: "Av. Providencia 123", PaymentMethod: "webpay", Items: []model.CartItem{{ProductID: 1, Quantity: -2}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubOrderRepo{}
			uc := NewOrderUseCase(repo)

			_, err := uc.PlaceOrder(context.Background(), 7, tc.req)
			if !errors.Is(err, domainErrors.ErrInvalidOrderRequest) {
				t.Fatalf("expected ErrInvalidOrderRequest, got %v", err)
			}
			if repo.createCalls != 0 {
				t.Fatalf("repository must not be called on invalid input, got %d calls", repo.createCalls)
			}
		})
	}
}

func TestPlaceOrderDelegates(t *testing.T) {
	want := &model.Order{ID: 42, Status: model.OrderStatusPaid, Total: 25000}
	repo := &stubOrderRepo{order: want}
	uc := NewOrderUseCase(repo)

	items := []model.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 1, Quantity: 1}}
	got, err := uc.PlaceOrder(context.Background(), 7, PlaceOrderRequest{
		ShippingAddress: "Av. Providencia 123",
		PaymentMethod:   "webpay",
		Items:           items,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected repository order back, got %+v", got)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.createCalls)
	}
	// Repeated product ids pass through untouched, one line each.
	if len(repo.lastItems) != 2 {
		t.Fatalf("expected 2 cart items forwarded, got %d", len(repo.lastItems))
	}
}

func TestPlaceOrderPropagatesStockFailure(t *testing.T) {
	repo := &stubOrderRepo{err: &domainErrors.InsufficientStockError{ProductID: 3, ProductName: "Anillo de plata", Requested: 5, Available: 1}}
	uc := NewOrderUseCase(repo)

	_, err := uc.PlaceOrder(context.Background(), 7, PlaceOrderRequest{
		ShippingAddress: "Av. Providencia 123",
		PaymentMethod:   "webpay",
		Items:           []model.CartItem{{ProductID: 3, Quantity: 5}},
	})
	if !domainErrors.IsInsufficientStock(err) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
}
