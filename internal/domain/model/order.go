package model

import "time"

// OrderStatus describes the purchase lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pendiente"
	OrderStatusPaid      OrderStatus = "Pagado"
	OrderStatusShipped   OrderStatus = "Enviado"
	OrderStatusDelivered OrderStatus = "Entregado"
)

// Order is the header record of a customer purchase. Total is kept equal to
// the sum of the line subtotals once placement completes.
type Order struct {
	ID              int64
	OrderDate       time.Time
	Status          OrderStatus
	Total           int64
	ShippingAddress string
	PaymentMethod   string
	UserID          int64
	Lines           []OrderLine
	Shipment        *Shipment
}

// OrderLine is one product-quantity entry owned by an order. Subtotal records
// the product price at purchase time; later price edits never touch it.
type OrderLine struct {
	ID        int64
	Quantity  int64
	Subtotal  int64
	OrderID   int64
	ProductID int64
}

// CartItem is one requested position of a cart before it becomes a line.
type CartItem struct {
	ProductID int64
	Quantity  int64
}

// OrderPatch carries the fields a partial order update may change. Nil fields
// are left untouched; owner and lines are never patchable.
type OrderPatch struct {
	OrderDate       *time.Time
	Status          *OrderStatus
	Total           *int64
	ShippingAddress *string
	PaymentMethod   *string
}
