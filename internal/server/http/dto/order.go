package dto

import "github.com/hoseki-store/joyeria/internal/domain/model"

// CartItemRequest is one requested cart position.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// PlaceOrderRequest describes the checkout payload.
type PlaceOrderRequest struct {
	ShippingAddress string            `json:"shipping_address"`
	PaymentMethod   string            `json:"payment_method"`
	Items           []CartItemRequest `json:"items"`
}

// OrderPatchRequest carries the optional header fields of a partial update.
type OrderPatchRequest struct {
	OrderDate       *string `json:"order_date"`
	Status          *string `json:"status"`
	Total           *int64  `json:"total"`
	ShippingAddress *string `json:"shipping_address"`
	PaymentMethod   *string `json:"payment_method"`
}

// OrderLineResponse is one line of an order.
type OrderLineResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
	Subtotal  int64 `json:"subtotal"`
}

// OrderResponse is the wire form of an order with its lines.
type OrderResponse struct {
	ID              int64               `json:"id"`
	OrderDate       string              `json:"order_date"`
	Status          string              `json:"status"`
	Total           int64               `json:"total"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentMethod   string              `json:"payment_method"`
	UserID          int64               `json:"user_id"`
	Lines           []OrderLineResponse `json:"lines"`
	Shipment        *ShipmentResponse   `json:"shipment,omitempty"`
}

// ToOrderResponse converts a domain order to its wire form.
func ToOrderResponse(order model.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}

	resp := OrderResponse{
		ID:              order.ID,
		OrderDate:       order.OrderDate.Format(DateLayout),
		Status:          string(order.Status),
		Total:           order.Total,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		UserID:          order.UserID,
		Lines:           lines,
	}
	if order.Shipment != nil {
		shipment := ToShipmentResponse(*order.Shipment)
		resp.Shipment = &shipment
	}
	return resp
}
