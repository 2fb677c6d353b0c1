package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Trucks() TruckRepository
	Menu() MenuRepository
	Carts() CartRepository
	Orders() OrderRepository
}
