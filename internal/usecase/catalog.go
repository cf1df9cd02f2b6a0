package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/domain/repository"
)

// CatalogUseCase manages products and categories. Stock is read here but
// only ever decremented by the order workflow.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if strings.TrimSpace(product.Name) == "" || product.Stock < 0 {
		return nil, domainErrors.ErrInvalidProduct
	}
	return u.products.Create(ctx, product)
}

func (u *CatalogUseCase) ProductByID(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

func (u *CatalogUseCase) SearchProducts(ctx context.Context, name string) ([]model.Product, error) {
	return u.products.FindByName(ctx, name)
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return u.products.Update(ctx, product)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return u.categories.Create(ctx, category)
}

func (u *CatalogUseCase) CategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

func (u *CatalogUseCase) SearchCategories(ctx context.Context, name string) ([]model.Category, error) {
	return u.categories.FindByName(ctx, name)
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

func (u *CatalogUseCase) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return u.categories.Update(ctx, category)
}

func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return u.categories.Delete(ctx, id)
}
