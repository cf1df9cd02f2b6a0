package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
)

// CategoryHandler manages the category side of the catalog.
type CategoryHandler struct {
	facade CatalogFacade
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(facade CatalogFacade) *CategoryHandler {
	return &CategoryHandler{facade: facade}
}

// Create handles POST /api/v1/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), &model.Category{Name: req.Name})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(*category))
}

// List handles GET /api/v1/categories, with an optional name filter.
func (h *CategoryHandler) List(c *gin.Context) {
	var (
		categories []model.Category
		err        error
	)
	if name := c.Query("name"); name != "" {
		categories, err = h.facade.SearchCategories(c.Request.Context(), name)
	} else {
		categories, err = h.facade.Categories(c.Request.Context())
	}
	if err != nil {
		errorResponse(c, err)
		return
	}
	if len(categories) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.ToCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	category, err := h.facade.Category(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}

// Update handles PUT /api/v1/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updated, err := h.facade.UpdateCategory(c.Request.Context(), &model.Category{ID: id, Name: req.Name})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(*updated))
}

// Delete handles DELETE /api/v1/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
