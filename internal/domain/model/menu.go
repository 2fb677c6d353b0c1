package model

import "time"

// ItemStatus is the lifecycle state of a menu item. Deleting an item is
// logical: the row is kept for historical orders and flipped to unavailable.
type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusUnavailable ItemStatus = "unavailable"
)

// Valid reports whether the value belongs to the known set.
func (s ItemStatus) Valid() bool {
	return s == ItemStatusAvailable || s == ItemStatusUnavailable
}

// MenuItem represents a single dish offered by a truck.
type MenuItem struct {
	ID          int64
	TruckID     int64
	Name        string
	Category    string
	Price       float64
	Description *string
	Status      ItemStatus
	CreatedAt   time.Time
}
