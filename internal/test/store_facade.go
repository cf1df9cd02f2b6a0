package test

import (
	"context"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for the user directory.
type UserFacadeStub struct {
	ListFn   func(context.Context) ([]model.User, error)
	ByRutFn  func(context.Context, string) ([]model.User, error)
	UpdateFn func(context.Context, *model.User) (*model.User, error)
	DeleteFn func(context.Context, int64) error
}

func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s UserFacadeStub) UsersByRut(ctx context.Context, rut string) ([]model.User, error) {
	if s.ByRutFn != nil {
		return s.ByRutFn(ctx, rut)
	}
	return nil, nil
}

func (s UserFacadeStub) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, user)
	}
	return user, nil
}

func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CreateProductFn  func(context.Context, *model.Product) (*model.Product, error)
	ProductFn        func(context.Context, int64) (*model.Product, error)
	ProductsFn       func(context.Context) ([]model.Product, error)
	SearchProductsFn func(context.Context, string) ([]model.Product, error)
	UpdateProductFn  func(context.Context, *model.Product) (*model.Product, error)
	DeleteProductFn  func(context.Context, int64) error

	CreateCategoryFn   func(context.Context, *model.Category) (*model.Category, error)
	CategoryFn         func(context.Context, int64) (*model.Category, error)
	CategoriesFn       func(context.Context) ([]model.Category, error)
	SearchCategoriesFn func(context.Context, string) ([]model.Category, error)
	UpdateCategoryFn   func(context.Context, *model.Category) (*model.Category, error)
	DeleteCategoryFn   func(context.Context, int64) error
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	out := *product
	out.ID = 1
	return &out, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Anillo de plata"}, nil
}

func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) SearchProducts(ctx context.Context, name string) ([]model.Product, error) {
	if s.SearchProductsFn != nil {
		return s.SearchProductsFn(ctx, name)
	}
	return nil, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return product, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, category)
	}
	out := *category
	out.ID = 1
	return &out, nil
}

func (s CatalogFacadeStub) Category(ctx context.Context, id int64) (*model.Category, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "Anillos"}, nil
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) SearchCategories(ctx context.Context, name string) ([]model.Category, error) {
	if s.SearchCategoriesFn != nil {
		return s.SearchCategoriesFn(ctx, name)
	}
	return nil, nil
}

func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, category)
	}
	return category, nil
}

func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// ShipmentFacadeStub provides controllable behaviour for shipment endpoints.
type ShipmentFacadeStub struct {
	CreateFn  func(context.Context, *model.Shipment) (*model.Shipment, error)
	GetFn     func(context.Context, int64) (*model.Shipment, error)
	ByOrderFn func(context.Context, int64) (*model.Shipment, error)
	ListFn    func(context.Context) ([]model.Shipment, error)
	UpdateFn  func(context.Context, *model.Shipment) (*model.Shipment, error)
	DeleteFn  func(context.Context, int64) error
}

func (s ShipmentFacadeStub) CreateShipment(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, shipment)
	}
	out := *shipment
	out.ID = 1
	return &out, nil
}

func (s ShipmentFacadeStub) Shipment(ctx context.Context, id int64) (*model.Shipment, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Shipment{ID: id, OrderID: 1, Status: model.ShipmentStatusPreparing}, nil
}

func (s ShipmentFacadeStub) ShipmentByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	if s.ByOrderFn != nil {
		return s.ByOrderFn(ctx, orderID)
	}
	return &model.Shipment{ID: 1, OrderID: orderID, Status: model.ShipmentStatusPreparing}, nil
}

func (s ShipmentFacadeStub) Shipments(ctx context.Context) ([]model.Shipment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s ShipmentFacadeStub) UpdateShipment(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, shipment)
	}
	return shipment, nil
}

func (s ShipmentFacadeStub) DeleteShipment(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ComplaintFacadeStub provides controllable behaviour for complaint endpoints.
type ComplaintFacadeStub struct {
	CreateFn func(context.Context, *model.Complaint) (*model.Complaint, error)
	GetFn    func(context.Context, int64) (*model.Complaint, error)
	ListFn   func(context.Context) ([]model.Complaint, error)
	SearchFn func(context.Context, string) ([]model.Complaint, error)
	UpdateFn func(context.Context, *model.Complaint) (*model.Complaint, error)
	DeleteFn func(context.Context, int64) error
}

func (s ComplaintFacadeStub) CreateComplaint(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, complaint)
	}
	out := *complaint
	out.ID = 1
	return &out, nil
}

func (s ComplaintFacadeStub) Complaint(ctx context.Context, id int64) (*model.Complaint, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Complaint{ID: id, Name: "Cliente", Problem: "Entrega"}, nil
}

func (s ComplaintFacadeStub) Complaints(ctx context.Context) ([]model.Complaint, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s ComplaintFacadeStub) SearchComplaints(ctx context.Context, problem string) ([]model.Complaint, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, problem)
	}
	return nil, nil
}

func (s ComplaintFacadeStub) UpdateComplaint(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, complaint)
	}
	return complaint, nil
}

func (s ComplaintFacadeStub) DeleteComplaint(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub reports configurable health state.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) HealthCheck(context.Context) error { return s.Err }

// StoreFacadeStub aggregates all facade stubs into one router-level stub.
type StoreFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	ShipmentFacadeStub
	ComplaintFacadeStub
	HealthFacadeStub
}
