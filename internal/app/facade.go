package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/events"
	"github.com/hoseki-store/joyeria/internal/metrics"
	"github.com/hoseki-store/joyeria/internal/usecase"
)

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade aggregates the store use cases behind one application surface.
// Handlers and the dispatch worker talk to it instead of individual use cases.
type StoreFacade struct {
	auth       *usecase.AuthUseCase
	users      *usecase.UserUseCase
	catalog    *usecase.CatalogUseCase
	orders     *usecase.OrderUseCase
	shipments  *usecase.ShipmentUseCase
	complaints *usecase.ComplaintUseCase
	producer   *events.Producer
	metrics    *metrics.StoreMetrics
	health     HealthChecker
}

// NewStoreFacade constructs the facade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	shipments *usecase.ShipmentUseCase,
	complaints *usecase.ComplaintUseCase,
	producer *events.Producer,
	storeMetrics *metrics.StoreMetrics,
	health HealthChecker,
) *StoreFacade {
	return &StoreFacade{
		auth:       auth,
		users:      users,
		catalog:    catalog,
		orders:     orders,
		shipments:  shipments,
		complaints: complaints,
		producer:   producer,
		metrics:    storeMetrics,
		health:     health,
	}
}

func (f *StoreFacade) Register(ctx context.Context, user *model.User, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, user, password)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StoreFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *StoreFacade) UsersByRut(ctx context.Context, rut string) ([]model.User, error) {
	return f.users.FindByRut(ctx, rut)
}

func (f *StoreFacade) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return f.users.Update(ctx, user)
}

func (f *StoreFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

// PlaceOrder runs the transactional placement workflow and records the
// outcome. Successful placements are announced on the event stream.
func (f *StoreFacade) PlaceOrder(ctx context.Context, userID int64, req usecase.PlaceOrderRequest) (*model.Order, error) {
	order, err := f.orders.PlaceOrder(ctx, userID, req)
	if err != nil {
		f.metrics.OrderRejections.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	f.metrics.OrdersPlaced.Inc()
	f.producer.Publish(ctx, fmt.Sprintf("order-%d", order.ID), events.OrderPlaced{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		Status:    string(order.Status),
		PlacedAt:  order.OrderDate,
		LineCount: len(order.Lines),
	})
	return order, nil
}

func rejectionReason(err error) string {
	switch {
	case domainErrors.IsInsufficientStock(err):
		return "insufficient_stock"
	case errors.Is(err, domainErrors.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domainErrors.ErrInvalidProductPrice):
		return "invalid_price"
	case errors.Is(err, domainErrors.ErrInvalidOrderRequest):
		return "invalid_request"
	case errors.Is(err, domainErrors.ErrUserNotFound):
		return "user_not_found"
	default:
		return "internal"
	}
}

func (f *StoreFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *StoreFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *StoreFacade) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) OrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	return f.orders.ListByDateRange(ctx, start, end)
}

func (f *StoreFacade) UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch)
}

func (f *StoreFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *StoreFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.ProductByID(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListProducts(ctx)
}

func (f *StoreFacade) SearchProducts(ctx context.Context, name string) ([]model.Product, error) {
	return f.catalog.SearchProducts(ctx, name)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, category)
}

func (f *StoreFacade) Category(ctx context.Context, id int64) (*model.Category, error) {
	return f.catalog.CategoryByID(ctx, id)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.ListCategories(ctx)
}

func (f *StoreFacade) SearchCategories(ctx context.Context, name string) ([]model.Category, error) {
	return f.catalog.SearchCategories(ctx, name)
}

func (f *StoreFacade) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, category)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StoreFacade) CreateShipment(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	return f.shipments.Create(ctx, shipment)
}

func (f *StoreFacade) Shipment(ctx context.Context, id int64) (*model.Shipment, error) {
	return f.shipments.GetByID(ctx, id)
}

func (f *StoreFacade) ShipmentByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	return f.shipments.GetByOrder(ctx, orderID)
}

func (f *StoreFacade) Shipments(ctx context.Context) ([]model.Shipment, error) {
	return f.shipments.List(ctx)
}

func (f *StoreFacade) UpdateShipment(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	return f.shipments.Update(ctx, shipment)
}

func (f *StoreFacade) DeleteShipment(ctx context.Context, id int64) error {
	return f.shipments.Delete(ctx, id)
}

// OrdersAwaitingShipment feeds the background dispatcher.
func (f *StoreFacade) OrdersAwaitingShipment(ctx context.Context, limit int) ([]model.Order, error) {
	return f.shipments.OrdersAwaitingDispatch(ctx, limit)
}

// DispatchShipment creates the shipment for a paid order if none exists yet
// and announces it. Racing a concurrent dispatch is not an error.
func (f *StoreFacade) DispatchShipment(ctx context.Context, orderID int64) (*model.Shipment, bool, error) {
	shipment, created, err := f.shipments.Dispatch(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	if created {
		f.metrics.ShipmentsDispatched.Inc()
		f.producer.Publish(ctx, fmt.Sprintf("shipment-%d", shipment.ID), events.ShipmentDispatched{
			ShipmentID:   shipment.ID,
			OrderID:      shipment.OrderID,
			Status:       string(shipment.Status),
			DispatchedAt: shipment.ShipmentDate,
		})
	}
	return shipment, created, nil
}

func (f *StoreFacade) CreateComplaint(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	return f.complaints.Create(ctx, complaint)
}

func (f *StoreFacade) Complaint(ctx context.Context, id int64) (*model.Complaint, error) {
	return f.complaints.GetByID(ctx, id)
}

func (f *StoreFacade) Complaints(ctx context.Context) ([]model.Complaint, error) {
	return f.complaints.List(ctx)
}

func (f *StoreFacade) SearchComplaints(ctx context.Context, problem string) ([]model.Complaint, error) {
	return f.complaints.FindByProblem(ctx, problem)
}

func (f *StoreFacade) UpdateComplaint(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	return f.complaints.Update(ctx, complaint)
}

func (f *StoreFacade) DeleteComplaint(ctx context.Context, id int64) error {
	return f.complaints.Delete(ctx, id)
}

func (f *StoreFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
