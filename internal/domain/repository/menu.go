package repository

import (
	"context"

	"github.com/grubtruck/grubtruck/internal/domain/model"
)

// MenuRepository describes persistence operations for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	// ListByTruck returns items of a truck; onlyAvailable restricts the
	// result to the customer-visible subset.
	ListByTruck(ctx context.Context, truckID int64, onlyAvailable bool) ([]model.MenuItem, error)
	// Update persists name, category, price, description and status for the
	// item scoped to its truck.
	Update(ctx context.Context, item *model.MenuItem) error
	// MarkUnavailable performs the logical delete.
	MarkUnavailable(ctx context.Context, id, truckID int64) error
}
