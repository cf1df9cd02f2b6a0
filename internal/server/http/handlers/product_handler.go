package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
)

// ProductHandler manages the product side of the catalog.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), productFromRequest(req))
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// List handles GET /api/v1/products, with an optional name filter.
func (h *ProductHandler) List(c *gin.Context) {
	var (
		products []model.Product
		err      error
	)
	if name := c.Query("name"); name != "" {
		products, err = h.facade.SearchProducts(c.Request.Context(), name)
	} else {
		products, err = h.facade.Products(c.Request.Context())
	}
	if err != nil {
		errorResponse(c, err)
		return
	}
	if len(products) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product := productFromRequest(req)
	product.ID = id
	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*updated))
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFromRequest(req dto.ProductRequest) *model.Product {
	return &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Photo:       req.Photo,
		CategoryID:  req.CategoryID,
	}
}
