package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
)

// ShipmentHandler manages shipment tracking endpoints.
type ShipmentHandler struct {
	facade ShipmentFacade
}

// NewShipmentHandler constructs ShipmentHandler.
func NewShipmentHandler(facade ShipmentFacade) *ShipmentHandler {
	return &ShipmentHandler{facade: facade}
}

// Create handles POST /api/v1/shipments.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req dto.ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	shipment := &model.Shipment{
		OrderID: req.OrderID,
		Status:  model.ShipmentStatus(req.Status),
	}
	if req.ShipmentDate != "" {
		date, err := time.Parse(dto.DateLayout, req.ShipmentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment_date"})
			return
		}
		shipment.ShipmentDate = date
	}

	created, err := h.facade.CreateShipment(c.Request.Context(), shipment)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToShipmentResponse(*created))
}

// List handles GET /api/v1/shipments.
func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.facade.Shipments(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	if len(shipments) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		response = append(response, dto.ToShipmentResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/shipments/:id.
func (h *ShipmentHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	shipment, err := h.facade.Shipment(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShipmentResponse(*shipment))
}

// GetByOrder handles GET /api/v1/orders/:id/shipment.
func (h *ShipmentHandler) GetByOrder(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	shipment, err := h.facade.ShipmentByOrder(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShipmentResponse(*shipment))
}

// Update handles PATCH /api/v1/shipments/:id.
func (h *ShipmentHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.ShipmentPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	current, err := h.facade.Shipment(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	if req.ShipmentDate != nil {
		date, err := time.Parse(dto.DateLayout, *req.ShipmentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment_date"})
			return
		}
		current.ShipmentDate = date
	}
	if req.Status != nil {
		current.Status = model.ShipmentStatus(*req.Status)
	}

	updated, err := h.facade.UpdateShipment(c.Request.Context(), current)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToShipmentResponse(*updated))
}

// Delete handles DELETE /api/v1/shipments/:id.
func (h *ShipmentHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteShipment(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
