package model

import "time"

// TruckStatus is the operational state of a truck, controlled by administrators.
type TruckStatus string

const (
	TruckStatusActive   TruckStatus = "active"
	TruckStatusInactive TruckStatus = "inactive"
)

// TruckOrderStatus is the owner-controlled accept-new-orders flag. It is
// independent of per-item availability and has no effect on placed orders.
type TruckOrderStatus string

const (
	TruckOrdersAvailable   TruckOrderStatus = "available"
	TruckOrdersUnavailable TruckOrderStatus = "unavailable"
)

// Valid reports whether the value belongs to the known set.
func (s TruckOrderStatus) Valid() bool {
	return s == TruckOrdersAvailable || s == TruckOrdersUnavailable
}

// Truck represents a food truck owned by a single truck-owner account.
type Truck struct {
	ID          int64
	OwnerID     int64
	Name        string
	TruckStatus TruckStatus
	OrderStatus TruckOrderStatus
	CreatedAt   time.Time
}

// Open reports whether the truck is visible to customers and accepts orders.
func (t Truck) Open() bool {
	return t.TruckStatus == TruckStatusActive && t.OrderStatus == TruckOrdersAvailable
}
