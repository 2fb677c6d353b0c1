package repository

import (
	"context"

	"github.com/grubtruck/grubtruck/internal/domain/model"
)

// TruckRepository describes persistence operations for trucks.
type TruckRepository interface {
	Create(ctx context.Context, ownerID int64, name string) (*model.Truck, error)
	GetByID(ctx context.Context, id int64) (*model.Truck, error)
	GetByOwner(ctx context.Context, ownerID int64) (*model.Truck, error)
	// ListOpen returns trucks visible to customers: operationally active
	// and currently accepting orders.
	ListOpen(ctx context.Context) ([]model.Truck, error)
	UpdateOrderStatus(ctx context.Context, truckID int64, status model.TruckOrderStatus) error
}
