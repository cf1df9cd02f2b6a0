package dto

import "github.com/hoseki-store/joyeria/internal/domain/model"

// CategoryRequest describes a category create or rename payload.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is the wire form of a catalog category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToCategoryResponse converts a domain category to its wire form.
func ToCategoryResponse(category model.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}
