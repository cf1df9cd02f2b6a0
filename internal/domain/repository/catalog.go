package repository

import (
	"context"

	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
// Stock is only ever decremented through OrderRepository.CreateFromCart.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	FindByName(ctx context.Context, name string) ([]model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository describes persistence operations with categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	FindByName(ctx context.Context, name string) ([]model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}
