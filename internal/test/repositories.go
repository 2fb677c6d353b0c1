package test

import (
	"context"
	"time"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// TruckRepositoryStub allows tests to customize truck behaviour.
type TruckRepositoryStub struct {
	CreateFn            func(context.Context, int64, string) (*model.Truck, error)
	GetByIDFn           func(context.Context, int64) (*model.Truck, error)
	GetByOwnerFn        func(context.Context, int64) (*model.Truck, error)
	ListOpenFn          func(context.Context) ([]model.Truck, error)
	UpdateOrderStatusFn func(context.Context, int64, model.TruckOrderStatus) error

	Trucks      []model.Truck
	UpdateCalls []TruckStatusCall
	Next        int64
}

// TruckStatusCall stores information about UpdateOrderStatus invocations.
type TruckStatusCall struct {
	TruckID int64
	Status  model.TruckOrderStatus
}

// Create tracks created trucks and returns them with assigned ids.
func (s *TruckRepositoryStub) Create(ctx context.Context, ownerID int64, name string) (*model.Truck, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, ownerID, name)
	}
	s.Next++
	truck := model.Truck{ID: s.Next, OwnerID: ownerID, Name: name, TruckStatus: model.TruckStatusActive, OrderStatus: model.TruckOrdersAvailable}
	s.Trucks = append(s.Trucks, truck)
	return &truck, nil
}

// GetByID returns matched truck either via override or stored slice.
func (s *TruckRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Truck, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, t := range s.Trucks {
		if t.ID == id {
			truck := t
			return &truck, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByOwner returns the truck owned by the given account.
func (s *TruckRepositoryStub) GetByOwner(ctx context.Context, ownerID int64) (*model.Truck, error) {
	if s.GetByOwnerFn != nil {
		return s.GetByOwnerFn(ctx, ownerID)
	}
	for _, t := range s.Trucks {
		if t.OwnerID == ownerID {
			truck := t
			return &truck, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListOpen returns trucks from configured slice that accept orders.
func (s *TruckRepositoryStub) ListOpen(ctx context.Context) ([]model.Truck, error) {
	if s.ListOpenFn != nil {
		return s.ListOpenFn(ctx)
	}
	open := make([]model.Truck, 0, len(s.Trucks))
	for _, t := range s.Trucks {
		if t.Open() {
			open = append(open, t)
		}
	}
	return open, nil
}

// UpdateOrderStatus records update invocations.
func (s *TruckRepositoryStub) UpdateOrderStatus(ctx context.Context, truckID int64, status model.TruckOrderStatus) error {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, truckID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, TruckStatusCall{TruckID: truckID, Status: status})
	return nil
}

// MenuRepositoryStub allows tests to customize catalog behaviour.
type MenuRepositoryStub struct {
	CreateFn          func(context.Context, *model.MenuItem) (*model.MenuItem, error)
	GetByIDFn         func(context.Context, int64) (*model.MenuItem, error)
	ListByTruckFn     func(context.Context, int64, bool) ([]model.MenuItem, error)
	UpdateFn          func(context.Context, *model.MenuItem) error
	MarkUnavailableFn func(context.Context, int64, int64) error

	Items   []model.MenuItem
	Updated []model.MenuItem
	Deleted []int64
	Next    int64
}

// Create tracks created items and returns them with assigned ids.
func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, item)
	}
	s.Next++
	created := *item
	created.ID = s.Next
	s.Items = append(s.Items, created)
	return &created, nil
}

// GetByID returns matched item either via override or stored slice.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, item := range s.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByTruck returns items from configured slice.
func (s *MenuRepositoryStub) ListByTruck(ctx context.Context, truckID int64, onlyAvailable bool) ([]model.MenuItem, error) {
	if s.ListByTruckFn != nil {
		return s.ListByTruckFn(ctx, truckID, onlyAvailable)
	}
	items := make([]model.MenuItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.TruckID != truckID {
			continue
		}
		if onlyAvailable && item.Status != model.ItemStatusAvailable {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Update records updated items.
func (s *MenuRepositoryStub) Update(ctx context.Context, item *model.MenuItem) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, item)
	}
	s.Updated = append(s.Updated, *item)
	return nil
}

// MarkUnavailable records logical deletions.
func (s *MenuRepositoryStub) MarkUnavailable(ctx context.Context, id, truckID int64) error {
	if s.MarkUnavailableFn != nil {
		return s.MarkUnavailableFn(ctx, id, truckID)
	}
	s.Deleted = append(s.Deleted, id)
	return nil
}

// CartRepositoryStub allows tests to customize cart behaviour.
type CartRepositoryStub struct {
	AddFn            func(context.Context, int64, int64, int32, float64) (*model.CartLine, error)
	ListByUserFn     func(context.Context, int64) ([]model.CartLine, error)
	UpdateQuantityFn func(context.Context, int64, int64, int32) error
	RemoveFn         func(context.Context, int64, int64) error

	Lines   []model.CartLine
	Removed []int64
	Next    int64
}

// Add tracks created lines and returns them with assigned ids.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, itemID int64, quantity int32, price float64) (*model.CartLine, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, itemID, quantity, price)
	}
	s.Next++
	line := model.CartLine{ID: s.Next, UserID: userID, ItemID: itemID, Quantity: quantity, Price: price}
	s.Lines = append(s.Lines, line)
	return &line, nil
}

// ListByUser returns lines from configured slice.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	lines := make([]model.CartLine, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.UserID == userID {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// UpdateQuantity executes configured handler or mutates stored lines.
func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, userID, cartID int64, quantity int32) error {
	if s.UpdateQuantityFn != nil {
		return s.UpdateQuantityFn(ctx, userID, cartID, quantity)
	}
	for i := range s.Lines {
		if s.Lines[i].ID == cartID && s.Lines[i].UserID == userID {
			s.Lines[i].Quantity = quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Remove records removed line identifiers.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, cartID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, cartID)
	}
	for i := range s.Lines {
		if s.Lines[i].ID == cartID && s.Lines[i].UserID == userID {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			s.Removed = append(s.Removed, cartID)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderStatusCall stores information about UpdateStatus invocations.
type OrderStatusCall struct {
	OrderID         int64
	TruckID         int64
	Status          model.OrderStatus
	EstimatedPickup *time.Time
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	PlaceFn          func(context.Context, int64, time.Time) (*model.Order, error)
	ListByCustomerFn func(context.Context, int64) ([]model.Order, error)
	ListByTruckFn    func(context.Context, int64) ([]model.Order, error)
	GetForCustomerFn func(context.Context, int64, int64) (*model.Order, error)
	GetForTruckFn    func(context.Context, int64, int64) (*model.Order, error)
	UpdateStatusFn   func(context.Context, int64, int64, model.OrderStatus, *time.Time) error

	Orders      []model.Order
	Placed      []time.Time
	UpdateCalls []OrderStatusCall
}

// Place tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Place(ctx context.Context, customerID int64, scheduledPickup time.Time) (*model.Order, error) {
	s.Placed = append(s.Placed, scheduledPickup)
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, customerID, scheduledPickup)
	}
	return &model.Order{ID: 1, CustomerID: customerID, TruckID: 1, Status: model.OrderStatusPending, ScheduledPickupTime: scheduledPickup}, nil
}

// ListByCustomer returns orders from configured slice.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	return s.Orders, nil
}

// ListByTruck returns orders from configured slice.
func (s *OrderRepositoryStub) ListByTruck(ctx context.Context, truckID int64) ([]model.Order, error) {
	if s.ListByTruckFn != nil {
		return s.ListByTruckFn(ctx, truckID)
	}
	return s.Orders, nil
}

// GetForCustomer returns a customer-scoped order.
func (s *OrderRepositoryStub) GetForCustomer(ctx context.Context, orderID, customerID int64) (*model.Order, error) {
	if s.GetForCustomerFn != nil {
		return s.GetForCustomerFn(ctx, orderID, customerID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID && o.CustomerID == customerID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetForTruck returns a truck-scoped order.
func (s *OrderRepositoryStub) GetForTruck(ctx context.Context, orderID, truckID int64) (*model.Order, error) {
	if s.GetForTruckFn != nil {
		return s.GetForTruckFn(ctx, orderID, truckID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID && o.TruckID == truckID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID, truckID int64, status model.OrderStatus, estimatedPickup *time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, truckID, status, estimatedPickup)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderStatusCall{OrderID: orderID, TruckID: truckID, Status: status, EstimatedPickup: estimatedPickup})
	return nil
}
