package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrComplaintNotFound   = errors.New("complaint not found")
	ErrInvalidProductPrice = errors.New("product has no unit price")
	ErrInvalidOrderRequest = errors.New("invalid order request")
	ErrInvalidProduct      = errors.New("invalid product")
	ErrInvalidRut          = errors.New("invalid rut")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrDuplicateRut        = errors.New("rut already registered")
	ErrShipmentExists      = errors.New("order already has a shipment")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// InsufficientStockError rejects an order item that asks for more units than
// the product has available. It names the product so the caller can report
// which position of the cart failed.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (id %d): requested %d, available %d",
		e.ProductName, e.ProductID, e.Requested, e.Available)
}

// IsInsufficientStock reports whether err is a stock rejection.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
