package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
)

// UserHandler manages the staff-only user directory endpoints.
type UserHandler struct {
	facade interface {
		AuthFacade
		UserFacade
	}
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade StoreFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/v1/users, with an optional rut filter.
func (h *UserHandler) List(c *gin.Context) {
	var (
		users []model.User
		err   error
	)
	if rut := c.Query("rut"); rut != "" {
		users, err = h.facade.UsersByRut(c.Request.Context(), rut)
	} else {
		users, err = h.facade.Users(c.Request.Context())
	}
	if err != nil {
		errorResponse(c, err)
		return
	}
	if len(users) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, dto.ToUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	user, err := h.facade.UserByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// Update handles PUT /api/v1/users/:id. Only profile fields change; RUT,
// password and roles are untouched.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updated, err := h.facade.UpdateUser(c.Request.Context(), &model.User{
		ID:       id,
		Name:     req.Name,
		Surname1: req.Surname1,
		Surname2: req.Surname2,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*updated))
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
