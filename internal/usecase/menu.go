package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/domain/repository"
)

// MenuUseCase manages a truck's catalog. Items are owned by the truck that
// created them; deletion is logical so historical orders keep valid
// references.
type MenuUseCase struct {
	menu repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

// Create adds a new item to the owner's truck. Status defaults to available.
func (u *MenuUseCase) Create(ctx context.Context, truckID int64, name, category string, price float64, description *string, status model.ItemStatus) (*model.MenuItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" || price <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if status == "" {
		status = model.ItemStatusAvailable
	}
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	return u.menu.Create(ctx, &model.MenuItem{
		TruckID:     truckID,
		Name:        name,
		Category:    category,
		Price:       price,
		Description: description,
		Status:      status,
	})
}

// GetForOwner returns one item of the owner's truck.
func (u *MenuUseCase) GetForOwner(ctx context.Context, itemID, truckID int64) (*model.MenuItem, error) {
	item, err := u.menu.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.TruckID != truckID {
		return nil, domainErrors.ErrNotFound
	}
	return item, nil
}

// ListForOwner returns every item of the truck, including unavailable ones.
func (u *MenuUseCase) ListForOwner(ctx context.Context, truckID int64) ([]model.MenuItem, error) {
	return u.menu.ListByTruck(ctx, truckID, false)
}

// ListAvailable returns the customer-visible menu of a truck.
func (u *MenuUseCase) ListAvailable(ctx context.Context, truckID int64) ([]model.MenuItem, error) {
	return u.menu.ListByTruck(ctx, truckID, true)
}

// ListAvailableByCategory narrows the customer-visible menu to one category.
// Category matching is case-insensitive.
func (u *MenuUseCase) ListAvailableByCategory(ctx context.Context, truckID int64, category string) ([]model.MenuItem, error) {
	items, err := u.menu.ListByTruck(ctx, truckID, true)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Category, category) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Update edits an item of the owner's truck.
func (u *MenuUseCase) Update(ctx context.Context, truckID, itemID int64, name, category string, price float64, description *string, status model.ItemStatus) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" || price <= 0 {
		return domainErrors.ErrInvalidInput
	}
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}

	return u.menu.Update(ctx, &model.MenuItem{
		ID:          itemID,
		TruckID:     truckID,
		Name:        name,
		Category:    category,
		Price:       price,
		Description: description,
		Status:      status,
	})
}

// Delete marks the item unavailable; the row stays for order history.
func (u *MenuUseCase) Delete(ctx context.Context, truckID, itemID int64) error {
	return u.menu.MarkUnavailable(ctx, itemID, truckID)
}
