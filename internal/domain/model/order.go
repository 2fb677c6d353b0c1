package model

import "time"

// OrderStatus describes the order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the value belongs to the known set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the move from s to next is allowed.
// The machine is strictly forward:
//
//	pending -> preparing -> ready -> completed
//
// with cancellation reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusPreparing
	case OrderStatusPreparing:
		return next == OrderStatusReady
	case OrderStatusReady:
		return next == OrderStatusCompleted
	}
	return false
}

// Order is an immutable snapshot of a checked-out cart. Only its status and
// the owner-supplied pickup estimate change after creation.
type Order struct {
	ID                      int64
	CustomerID              int64
	TruckID                 int64
	TotalPrice              float64
	Status                  OrderStatus
	ScheduledPickupTime     time.Time
	EstimatedEarliestPickup *time.Time
	CreatedAt               time.Time
	// TruckName and CustomerName are denormalized for list views.
	TruckName    string
	CustomerName string
	Items        []OrderItem
}

// OrderItem is a denormalized copy of a cart line taken at order time,
// immune to later catalog edits.
type OrderItem struct {
	ID       int64
	OrderID  int64
	Name     string
	Price    float64
	Quantity int32
}
