package usecase

import (
	"context"
	"time"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/domain/repository"
)

// OrderUseCase encapsulates the cart-to-order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// Place checks out the customer's cart into an immutable order. The pickup
// time must lie in the future.
func (u *OrderUseCase) Place(ctx context.Context, customerID int64, scheduledPickup time.Time) (*model.Order, error) {
	if scheduledPickup.IsZero() || !scheduledPickup.After(u.now()) {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.orders.Place(ctx, customerID, scheduledPickup)
}

// ListByCustomer returns the customer's own orders, newest first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ListByTruck returns orders placed against the truck, newest first.
func (u *OrderUseCase) ListByTruck(ctx context.Context, truckID int64) ([]model.Order, error) {
	return u.orders.ListByTruck(ctx, truckID)
}

// GetForCustomer returns one of the customer's orders with its items.
func (u *OrderUseCase) GetForCustomer(ctx context.Context, orderID, customerID int64) (*model.Order, error) {
	return u.orders.GetForCustomer(ctx, orderID, customerID)
}

// GetForTruck returns one of the truck's orders with its items.
func (u *OrderUseCase) GetForTruck(ctx context.Context, orderID, truckID int64) (*model.Order, error) {
	return u.orders.GetForTruck(ctx, orderID, truckID)
}

// UpdateStatus advances an order of the given truck through the status
// machine, optionally recording the owner-supplied earliest pickup estimate.
// The estimate is stored without validation against the scheduled pickup.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID, truckID int64, status model.OrderStatus, estimatedPickup *time.Time) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, truckID, status, estimatedPickup)
}
