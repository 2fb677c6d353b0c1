package repository

import (
	"context"
	"time"

	"github.com/grubtruck/grubtruck/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	// Place converts the customer's cart into one order plus item snapshots
	// and clears the consumed lines, all inside a single transaction.
	Place(ctx context.Context, customerID int64, scheduledPickup time.Time) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByTruck(ctx context.Context, truckID int64) ([]model.Order, error)
	GetForCustomer(ctx context.Context, orderID, customerID int64) (*model.Order, error)
	GetForTruck(ctx context.Context, orderID, truckID int64) (*model.Order, error)
	// UpdateStatus advances the order through the status machine; the order
	// must belong to the given truck. A nil estimate leaves the stored
	// estimated pickup untouched.
	UpdateStatus(ctx context.Context, orderID, truckID int64, status model.OrderStatus, estimatedPickup *time.Time) error
}
