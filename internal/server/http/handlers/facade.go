package handlers

import (
	"context"
	"time"

	"github.com/grubtruck/grubtruck/internal/domain/model"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, role model.Role, truckName string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	User(ctx context.Context, userID int64) (*model.User, error)
}

// TruckFacade exposes truck discovery and owner truck management.
type TruckFacade interface {
	OpenTrucks(ctx context.Context) ([]model.Truck, error)
	MyTruck(ctx context.Context, ownerID int64) (*model.Truck, error)
	SetTruckOrderStatus(ctx context.Context, truckID int64, status model.TruckOrderStatus) error
}

// MenuFacade exposes catalog operations for both roles.
type MenuFacade interface {
	CreateMenuItem(ctx context.Context, truckID int64, name, category string, price float64, description *string, status model.ItemStatus) (*model.MenuItem, error)
	MenuItem(ctx context.Context, itemID, truckID int64) (*model.MenuItem, error)
	OwnMenu(ctx context.Context, truckID int64) ([]model.MenuItem, error)
	TruckMenu(ctx context.Context, truckID int64) ([]model.MenuItem, error)
	TruckMenuByCategory(ctx context.Context, truckID int64, category string) ([]model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, truckID, itemID int64, name, category string, price float64, description *string, status model.ItemStatus) error
	DeleteMenuItem(ctx context.Context, truckID, itemID int64) error
}

// CartFacade exposes cart operations.
type CartFacade interface {
	AddToCart(ctx context.Context, userID, itemID int64, quantity int32, price float64) (*model.CartLine, error)
	Cart(ctx context.Context, userID int64) ([]model.CartLine, error)
	UpdateCartQuantity(ctx context.Context, userID, cartID int64, quantity int32) error
	RemoveCartLine(ctx context.Context, userID, cartID int64) error
}

// OrderFacade exposes checkout and order tracking for both roles.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, customerID int64, scheduledPickup time.Time) (*model.Order, error)
	MyOrders(ctx context.Context, customerID int64) ([]model.Order, error)
	TruckOrders(ctx context.Context, truckID int64) ([]model.Order, error)
	OrderForCustomer(ctx context.Context, orderID, customerID int64) (*model.Order, error)
	OrderForTruck(ctx context.Context, orderID, truckID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, truckID int64, status model.OrderStatus, estimatedPickup *time.Time) error
}

// PlatformFacade aggregates the full set of operations used across handlers.
type PlatformFacade interface {
	AuthFacade
	TruckFacade
	MenuFacade
	CartFacade
	OrderFacade
}
