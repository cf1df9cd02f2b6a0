package dto

import "github.com/hoseki-store/joyeria/internal/domain/model"

// ProductRequest describes a product create or replace payload. Price stays
// optional: items can be listed before pricing is settled.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       *int64 `json:"price"`
	Stock       int64  `json:"stock"`
	Photo       string `json:"photo"`
	CategoryID  int64  `json:"category_id"`
}

// ProductResponse is the wire form of a catalog product.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       *int64 `json:"price"`
	Stock       int64  `json:"stock"`
	Photo       string `json:"photo,omitempty"`
	CategoryID  int64  `json:"category_id"`
}

// ToProductResponse converts a domain product to its wire form.
func ToProductResponse(product model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Photo:       product.Photo,
		CategoryID:  product.CategoryID,
	}
}
