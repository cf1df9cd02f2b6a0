package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// PathID parses the :id path parameter. A malformed id answers 400 and
// reports false.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// errorResponse writes the standard error body with a status derived from
// the domain error.
func errorResponse(c *gin.Context, err error) {
	switch {
	case domainErrors.IsInsufficientStock(err),
		errors.Is(err, domainErrors.ErrInvalidOrderRequest),
		errors.Is(err, domainErrors.ErrInvalidProduct),
		errors.Is(err, domainErrors.ErrInvalidProductPrice),
		errors.Is(err, domainErrors.ErrInvalidRut):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrDuplicateEmail),
		errors.Is(err, domainErrors.ErrDuplicateRut),
		errors.Is(err, domainErrors.ErrShipmentExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrUserNotFound),
		errors.Is(err, domainErrors.ErrProductNotFound),
		errors.Is(err, domainErrors.ErrOrderNotFound),
		errors.Is(err, domainErrors.ErrCategoryNotFound),
		errors.Is(err, domainErrors.ErrShipmentNotFound),
		errors.Is(err, domainErrors.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
