package dto

import "github.com/hoseki-store/joyeria/internal/domain/model"

// ShipmentRequest describes a manual shipment creation payload.
type ShipmentRequest struct {
	OrderID      int64  `json:"order_id"`
	ShipmentDate string `json:"shipment_date"`
	Status       string `json:"status"`
}

// ShipmentPatchRequest carries the mutable shipment fields.
type ShipmentPatchRequest struct {
	ShipmentDate *string `json:"shipment_date"`
	Status       *string `json:"status"`
}

// ShipmentResponse is the wire form of a shipment.
type ShipmentResponse struct {
	ID           int64  `json:"id"`
	OrderID      int64  `json:"order_id"`
	ShipmentDate string `json:"shipment_date"`
	Status       string `json:"status"`
}

// ToShipmentResponse converts a domain shipment to its wire form.
func ToShipmentResponse(shipment model.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:           shipment.ID,
		OrderID:      shipment.OrderID,
		ShipmentDate: shipment.ShipmentDate.Format(DateLayout),
		Status:       string(shipment.Status),
	}
}
