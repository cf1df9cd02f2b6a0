package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
	"github.com/hoseki-store/joyeria/internal/usecase"
)

// OrderHandler manages order placement and the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/v1/orders. Any business failure of the placement
// workflow answers 400 with the reason, and nothing is persisted.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	items := make([]model.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), usecase.PlaceOrderRequest{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
	})
	if err != nil {
		switch {
		case domainErrors.IsInsufficientStock(err),
			errors.Is(err, domainErrors.ErrProductNotFound),
			errors.Is(err, domainErrors.ErrInvalidProductPrice),
			errors.Is(err, domainErrors.ErrInvalidOrderRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			errorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

// Mine handles GET /api/v1/orders/mine.
func (h *OrderHandler) Mine(c *gin.Context) {
	orders, err := h.facade.OrdersByUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	respondOrders(c, orders)
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	respondOrders(c, orders)
}

// ListByDateRange handles GET /api/v1/orders/range?start=...&end=...
// with inclusive calendar-date bounds.
func (h *OrderHandler) ListByDateRange(c *gin.Context) {
	start, err := time.Parse(dto.DateLayout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
		return
	}
	end, err := time.Parse(dto.DateLayout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date"})
		return
	}

	// Push the upper bound to the end of its day so the range is inclusive.
	end = end.Add(24*time.Hour - time.Nanosecond)

	orders, err := h.facade.OrdersByDateRange(c.Request.Context(), start, end)
	if err != nil {
		errorResponse(c, err)
		return
	}
	respondOrders(c, orders)
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Update handles PATCH /api/v1/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.OrderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var patch model.OrderPatch
	if req.OrderDate != nil {
		date, err := time.Parse(dto.DateLayout, *req.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order_date"})
			return
		}
		patch.OrderDate = &date
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		patch.Status = &status
	}
	patch.Total = req.Total
	patch.ShippingAddress = req.ShippingAddress
	patch.PaymentMethod = req.PaymentMethod

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, patch)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Delete handles DELETE /api/v1/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondOrders(c *gin.Context, orders []model.Order) {
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}
