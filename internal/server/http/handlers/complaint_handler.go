package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
)

// ComplaintHandler manages the contact-form endpoints. Submission is open to
// anyone; reading and triage are staff operations.
type ComplaintHandler struct {
	facade ComplaintFacade
}

// NewComplaintHandler constructs ComplaintHandler.
func NewComplaintHandler(facade ComplaintFacade) *ComplaintHandler {
	return &ComplaintHandler{facade: facade}
}

// Create handles POST /api/v1/complaints.
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req dto.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Problem) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and problem are required"})
		return
	}

	complaint, err := h.facade.CreateComplaint(c.Request.Context(), complaintFromRequest(req))
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToComplaintResponse(*complaint))
}

// List handles GET /api/v1/complaints, with an optional problem filter.
func (h *ComplaintHandler) List(c *gin.Context) {
	var (
		complaints []model.Complaint
		err        error
	)
	if problem := c.Query("problem"); problem != "" {
		complaints, err = h.facade.SearchComplaints(c.Request.Context(), problem)
	} else {
		complaints, err = h.facade.Complaints(c.Request.Context())
	}
	if err != nil {
		errorResponse(c, err)
		return
	}
	if len(complaints) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.ComplaintResponse, 0, len(complaints))
	for _, item := range complaints {
		response = append(response, dto.ToComplaintResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/complaints/:id.
func (h *ComplaintHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	complaint, err := h.facade.Complaint(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToComplaintResponse(*complaint))
}

// Update handles PUT /api/v1/complaints/:id.
func (h *ComplaintHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	complaint := complaintFromRequest(req)
	complaint.ID = id
	updated, err := h.facade.UpdateComplaint(c.Request.Context(), complaint)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToComplaintResponse(*updated))
}

// Delete handles DELETE /api/v1/complaints/:id.
func (h *ComplaintHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteComplaint(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func complaintFromRequest(req dto.ComplaintRequest) *model.Complaint {
	return &model.Complaint{
		Name:    req.Name,
		Rut:     req.Rut,
		Email:   req.Email,
		Phone:   req.Phone,
		Problem: req.Problem,
		Detail:  req.Detail,
	}
}
