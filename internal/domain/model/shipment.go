package model

import "time"

// ShipmentStatus describes the dispatch lifecycle. The set is a vocabulary,
// not an enforced transition table: any status may be set via update.
type ShipmentStatus string

const (
	ShipmentStatusPreparing ShipmentStatus = "En Preparación"
	ShipmentStatusOnTheWay  ShipmentStatus = "En Camino"
	ShipmentStatusDelivered ShipmentStatus = "Entregado"
)

// Shipment is the dispatch record attached 1:1 to an order.
type Shipment struct {
	ID           int64
	ShipmentDate time.Time
	Status       ShipmentStatus
	OrderID      int64
}
