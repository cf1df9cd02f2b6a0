package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Orders() OrderRepository
	Shipments() ShipmentRepository
	Complaints() ComplaintRepository
}
