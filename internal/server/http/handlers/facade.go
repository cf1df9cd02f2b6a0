package handlers

import (
	"context"
	"time"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, user *model.User, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// UserFacade exposes the staff user directory.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	UsersByRut(ctx context.Context, rut string) ([]model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CatalogFacade exposes product and category management.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, name string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	Category(ctx context.Context, id int64) (*model.Category, error)
	Categories(ctx context.Context) ([]model.Category, error)
	SearchCategories(ctx context.Context, name string) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, req usecase.PlaceOrderRequest) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	OrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// ShipmentFacade exposes shipment tracking operations.
type ShipmentFacade interface {
	CreateShipment(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error)
	Shipment(ctx context.Context, id int64) (*model.Shipment, error)
	ShipmentByOrder(ctx context.Context, orderID int64) (*model.Shipment, error)
	Shipments(ctx context.Context) ([]model.Shipment, error)
	UpdateShipment(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error)
	DeleteShipment(ctx context.Context, id int64) error
}

// ComplaintFacade exposes the contact-form operations.
type ComplaintFacade interface {
	CreateComplaint(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error)
	Complaint(ctx context.Context, id int64) (*model.Complaint, error)
	Complaints(ctx context.Context) ([]model.Complaint, error)
	SearchComplaints(ctx context.Context, problem string) ([]model.Complaint, error)
	UpdateComplaint(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error)
	DeleteComplaint(ctx context.Context, id int64) error
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	UserFacade
	CatalogFacade
	OrderFacade
	ShipmentFacade
	ComplaintFacade
	HealthFacade
}
