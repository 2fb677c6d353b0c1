package app

import (
	"context"
	"time"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/usecase"
)

// PlatformFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer.
type PlatformFacade struct {
	auth   *usecase.AuthUseCase
	trucks *usecase.TruckUseCase
	menu   *usecase.MenuUseCase
	carts  *usecase.CartUseCase
	orders *usecase.OrderUseCase
}

func NewPlatformFacade(auth *usecase.AuthUseCase, trucks *usecase.TruckUseCase, menu *usecase.MenuUseCase, carts *usecase.CartUseCase, orders *usecase.OrderUseCase) *PlatformFacade {
	return &PlatformFacade{auth: auth, trucks: trucks, menu: menu, carts: carts, orders: orders}
}

func (f *PlatformFacade) Register(ctx context.Context, login, password string, role model.Role, truckName string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, role, truckName)
	return token, err
}

func (f *PlatformFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *PlatformFacade) Resolve(ctx context.Context, token string) (*model.Principal, error) {
	return f.auth.Resolve(ctx, token)
}

func (f *PlatformFacade) User(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *PlatformFacade) OpenTrucks(ctx context.Context) ([]model.Truck, error) {
	return f.trucks.Browse(ctx)
}

func (f *PlatformFacade) MyTruck(ctx context.Context, ownerID int64) (*model.Truck, error) {
	return f.trucks.MyTruck(ctx, ownerID)
}

func (f *PlatformFacade) SetTruckOrderStatus(ctx context.Context, truckID int64, status model.TruckOrderStatus) error {
	return f.trucks.SetOrderStatus(ctx, truckID, status)
}

func (f *PlatformFacade) CreateMenuItem(ctx context.Context, truckID int64, name, category string, price float64, description *string, status model.ItemStatus) (*model.MenuItem, error) {
	return f.menu.Create(ctx, truckID, name, category, price, description, status)
}

func (f *PlatformFacade) MenuItem(ctx context.Context, itemID, truckID int64) (*model.MenuItem, error) {
	return f.menu.GetForOwner(ctx, itemID, truckID)
}

func (f *PlatformFacade) OwnMenu(ctx context.Context, truckID int64) ([]model.MenuItem, error) {
	return f.menu.ListForOwner(ctx, truckID)
}

func (f *PlatformFacade) TruckMenuByCategory(ctx context.Context, truckID int64, category string) ([]model.MenuItem, error) {
	return f.menu.ListAvailableByCategory(ctx, truckID, category)
}

func (f *PlatformFacade) TruckMenu(ctx context.Context, truckID int64) ([]model.MenuItem, error) {
	return f.menu.ListAvailable(ctx, truckID)
}

func (f *PlatformFacade) UpdateMenuItem(ctx context.Context, truckID, itemID int64, name, category string, price float64, description *string, status model.ItemStatus) error {
	return f.menu.Update(ctx, truckID, itemID, name, category, price, description, status)
}

func (f *PlatformFacade) DeleteMenuItem(ctx context.Context, truckID, itemID int64) error {
	return f.menu.Delete(ctx, truckID, itemID)
}

func (f *PlatformFacade) AddToCart(ctx context.Context, userID, itemID int64, quantity int32, price float64) (*model.CartLine, error) {
	return f.carts.Add(ctx, userID, itemID, quantity, price)
}

func (f *PlatformFacade) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.carts.View(ctx, userID)
}

func (f *PlatformFacade) UpdateCartQuantity(ctx context.Context, userID, cartID int64, quantity int32) error {
	return f.carts.UpdateQuantity(ctx, userID, cartID, quantity)
}

func (f *PlatformFacade) RemoveCartLine(ctx context.Context, userID, cartID int64) error {
	return f.carts.Remove(ctx, userID, cartID)
}

func (f *PlatformFacade) PlaceOrder(ctx context.Context, customerID int64, scheduledPickup time.Time) (*model.Order, error) {
	return f.orders.Place(ctx, customerID, scheduledPickup)
}

func (f *PlatformFacade) MyOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

func (f *PlatformFacade) TruckOrders(ctx context.Context, truckID int64) ([]model.Order, error) {
	return f.orders.ListByTruck(ctx, truckID)
}

func (f *PlatformFacade) OrderForCustomer(ctx context.Context, orderID, customerID int64) (*model.Order, error) {
	return f.orders.GetForCustomer(ctx, orderID, customerID)
}

func (f *PlatformFacade) OrderForTruck(ctx context.Context, orderID, truckID int64) (*model.Order, error) {
	return f.orders.GetForTruck(ctx, orderID, truckID)
}

func (f *PlatformFacade) UpdateOrderStatus(ctx context.Context, orderID, truckID int64, status model.OrderStatus, estimatedPickup *time.Time) error {
	return f.orders.UpdateStatus(ctx, orderID, truckID, status, estimatedPickup)
}
