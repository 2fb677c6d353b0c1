package usecase

import (
	"context"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/domain/repository"
)

// TruckUseCase covers truck browsing and the accept-new-orders gate.
type TruckUseCase struct {
	trucks repository.TruckRepository
}

// NewTruckUseCase constructs TruckUseCase.
func NewTruckUseCase(trucks repository.TruckRepository) *TruckUseCase {
	return &TruckUseCase{trucks: trucks}
}

// Browse returns trucks visible to customers: active and accepting orders.
func (u *TruckUseCase) Browse(ctx context.Context) ([]model.Truck, error) {
	return u.trucks.ListOpen(ctx)
}

// MyTruck returns the owner's truck regardless of its status.
func (u *TruckUseCase) MyTruck(ctx context.Context, ownerID int64) (*model.Truck, error) {
	return u.trucks.GetByOwner(ctx, ownerID)
}

// SetOrderStatus flips the truck's accept-new-orders flag. Placed orders are
// unaffected.
func (u *TruckUseCase) SetOrderStatus(ctx context.Context, truckID int64, status model.TruckOrderStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return u.trucks.UpdateOrderStatus(ctx, truckID, status)
}
