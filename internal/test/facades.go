package test

import (
	"context"
	"time"

	"github.com/grubtruck/grubtruck/internal/domain/model"
)

// AuthFacadeStub simulates account facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, model.Role, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	UserFn         func(context.Context, int64) (*model.User, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string, role model.Role, truckName string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, role, truckName)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// User returns the stored account for the identifier.
func (s AuthFacadeStub) User(ctx context.Context, userID int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, userID)
	}
	return &model.User{ID: userID, Login: "user", Role: model.RoleCustomer}, nil
}

// TruckFacadeStub provides controllable behaviour for truck endpoints.
type TruckFacadeStub struct {
	OpenTrucksFn          func(context.Context) ([]model.Truck, error)
	MyTruckFn             func(context.Context, int64) (*model.Truck, error)
	SetTruckOrderStatusFn func(context.Context, int64, model.TruckOrderStatus) error
}

// OpenTrucks returns predefined open trucks.
func (s TruckFacadeStub) OpenTrucks(ctx context.Context) ([]model.Truck, error) {
	if s.OpenTrucksFn != nil {
		return s.OpenTrucksFn(ctx)
	}
	return []model.Truck{{ID: 1, Name: "Taco Cart", TruckStatus: model.TruckStatusActive, OrderStatus: model.TruckOrdersAvailable}}, nil
}

// MyTruck returns the owner's truck.
func (s TruckFacadeStub) MyTruck(ctx context.Context, ownerID int64) (*model.Truck, error) {
	if s.MyTruckFn != nil {
		return s.MyTruckFn(ctx, ownerID)
	}
	return &model.Truck{ID: 1, OwnerID: ownerID, Name: "Taco Cart"}, nil
}

// SetTruckOrderStatus executes configured handler.
func (s TruckFacadeStub) SetTruckOrderStatus(ctx context.Context, truckID int64, status model.TruckOrderStatus) error {
	if s.SetTruckOrderStatusFn != nil {
		return s.SetTruckOrderStatusFn(ctx, truckID, status)
	}
	return nil
}

// MenuFacadeStub provides controllable behaviour for catalog endpoints.
type MenuFacadeStub struct {
	CreateFn     func(context.Context, int64, string, string, float64, *string, model.ItemStatus) (*model.MenuItem, error)
	GetFn        func(context.Context, int64, int64) (*model.MenuItem, error)
	OwnMenuFn    func(context.Context, int64) ([]model.MenuItem, error)
	TruckMenuFn  func(context.Context, int64) ([]model.MenuItem, error)
	ByCategoryFn func(context.Context, int64, string) ([]model.MenuItem, error)
	UpdateFn     func(context.Context, int64, int64, string, string, float64, *string, model.ItemStatus) error
	DeleteFn     func(context.Context, int64, int64) error
}

// CreateMenuItem delegates to provided function or returns default item.
func (s MenuFacadeStub) CreateMenuItem(ctx context.Context, truckID int64, name, category string, price float64, description *string, status model.ItemStatus) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, truckID, name, category, price, description, status)
	}
	return &model.MenuItem{ID: 1, TruckID: truckID, Name: name, Category: category, Price: price, Description: description, Status: status}, nil
}

// MenuItem returns a single item scoped to the truck.
func (s MenuFacadeStub) MenuItem(ctx context.Context, itemID, truckID int64) (*model.MenuItem, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, itemID, truckID)
	}
	return &model.MenuItem{ID: itemID, TruckID: truckID, Name: "Burrito", Status: model.ItemStatusAvailable}, nil
}

// OwnMenu returns the owner's full menu.
func (s MenuFacadeStub) OwnMenu(ctx context.Context, truckID int64) ([]model.MenuItem, error) {
	if s.OwnMenuFn != nil {
		return s.OwnMenuFn(ctx, truckID)
	}
	return []model.MenuItem{{ID: 1, TruckID: truckID, Name: "Burrito"}}, nil
}

// TruckMenu returns the customer-visible menu of a truck.
func (s MenuFacadeStub) TruckMenu(ctx context.Context, truckID int64) ([]model.MenuItem, error) {
	if s.TruckMenuFn != nil {
		return s.TruckMenuFn(ctx, truckID)
	}
	return []model.MenuItem{{ID: 1, TruckID: truckID, Name: "Burrito", Status: model.ItemStatusAvailable}}, nil
}

// TruckMenuByCategory returns the customer-visible menu narrowed by category.
func (s MenuFacadeStub) TruckMenuByCategory(ctx context.Context, truckID int64, category string) ([]model.MenuItem, error) {
	if s.ByCategoryFn != nil {
		return s.ByCategoryFn(ctx, truckID, category)
	}
	return []model.MenuItem{{ID: 1, TruckID: truckID, Name: "Burrito", Category: category, Status: model.ItemStatusAvailable}}, nil
}

// UpdateMenuItem executes configured handler.
func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, truckID, itemID int64, name, category string, price float64, description *string, status model.ItemStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, truckID, itemID, name, category, price, description, status)
	}
	return nil
}

// DeleteMenuItem executes configured handler.
func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, truckID, itemID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, truckID, itemID)
	}
	return nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	AddFn    func(context.Context, int64, int64, int32, float64) (*model.CartLine, error)
	CartFn   func(context.Context, int64) ([]model.CartLine, error)
	EditFn   func(context.Context, int64, int64, int32) error
	RemoveFn func(context.Context, int64, int64) error
}

// AddToCart delegates to provided function or returns default line.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, itemID int64, quantity int32, price float64) (*model.CartLine, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, itemID, quantity, price)
	}
	return &model.CartLine{ID: 1, UserID: userID, ItemID: itemID, Quantity: quantity, Price: price, ItemName: "Burrito", TruckID: 1}, nil
}

// Cart returns predefined lines for given user.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return []model.CartLine{{ID: 1, UserID: userID, ItemID: 1, Quantity: 1, Price: 9.5, ItemName: "Burrito", TruckID: 1}}, nil
}

// UpdateCartQuantity executes configured handler.
func (s CartFacadeStub) UpdateCartQuantity(ctx context.Context, userID, cartID int64, quantity int32) error {
	if s.EditFn != nil {
		return s.EditFn(ctx, userID, cartID, quantity)
	}
	return nil
}

// RemoveCartLine executes configured handler.
func (s CartFacadeStub) RemoveCartLine(ctx context.Context, userID, cartID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, cartID)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, int64, time.Time) (*model.Order, error)
	MyOrdersFn     func(context.Context, int64) ([]model.Order, error)
	TruckOrdersFn  func(context.Context, int64) ([]model.Order, error)
	ForCustomerFn  func(context.Context, int64, int64) (*model.Order, error)
	ForTruckFn     func(context.Context, int64, int64) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, int64, model.OrderStatus, *time.Time) error
}

// PlaceOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, customerID int64, scheduledPickup time.Time) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, customerID, scheduledPickup)
	}
	return &model.Order{ID: 1, CustomerID: customerID, TruckID: 1, Status: model.OrderStatusPending, ScheduledPickupTime: scheduledPickup}, nil
}

// MyOrders returns predefined orders for given customer.
func (s OrderFacadeStub) MyOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, customerID)
	}
	return []model.Order{{ID: 1, CustomerID: customerID, Status: model.OrderStatusPending}}, nil
}

// TruckOrders returns predefined orders for given truck.
func (s OrderFacadeStub) TruckOrders(ctx context.Context, truckID int64) ([]model.Order, error) {
	if s.TruckOrdersFn != nil {
		return s.TruckOrdersFn(ctx, truckID)
	}
	return []model.Order{{ID: 1, TruckID: truckID, Status: model.OrderStatusPending}}, nil
}

// OrderForCustomer returns one order scoped to the customer.
func (s OrderFacadeStub) OrderForCustomer(ctx context.Context, orderID, customerID int64) (*model.Order, error) {
	if s.ForCustomerFn != nil {
		return s.ForCustomerFn(ctx, orderID, customerID)
	}
	return &model.Order{ID: orderID, CustomerID: customerID, Status: model.OrderStatusPending}, nil
}

// OrderForTruck returns one order scoped to the truck.
func (s OrderFacadeStub) OrderForTruck(ctx context.Context, orderID, truckID int64) (*model.Order, error) {
	if s.ForTruckFn != nil {
		return s.ForTruckFn(ctx, orderID, truckID)
	}
	return &model.Order{ID: orderID, TruckID: truckID, Status: model.OrderStatusPending}, nil
}

// UpdateOrderStatus executes configured handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID, truckID int64, status model.OrderStatus, estimatedPickup *time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, truckID, status, estimatedPickup)
	}
	return nil
}

// PlatformFacadeStub aggregates facade dependencies for HTTP layer tests.
type PlatformFacadeStub struct {
	AuthFacadeStub
	TruckFacadeStub
	MenuFacadeStub
	CartFacadeStub
	OrderFacadeStub
}
