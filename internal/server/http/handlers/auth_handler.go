package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoseki-store/joyeria/internal/domain/model"
	"github.com/hoseki-store/joyeria/internal/server/http/dto"
	"github.com/hoseki-store/joyeria/internal/server/http/middleware"
)

// AuthHandler processes registration, login and the current-user lookup.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user := &model.User{
		Run:        req.Run,
		CheckDigit: req.CheckDigit,
		Name:       req.Name,
		Surname1:   req.Surname1,
		Surname2:   req.Surname2,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	if req.BirthDate != "" {
		birth, err := time.Parse(dto.DateLayout, req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birth_date"})
			return
		}
		user.BirthDate = birth
	}

	created, token, err := h.facade.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, Role: created.PrimaryRole()})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, Role: user.PrimaryRole()})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.UserByID(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}
