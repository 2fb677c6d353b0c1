package usecase

import (
	"context"

	domainErrors "github.com/grubtruck/grubtruck/internal/domain/errors"
	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/domain/repository"
)

// CartUseCase owns a customer's pending selections. The persistence layer
// enforces the single-truck invariant; this layer validates the inputs.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// Add inserts a new cart line. The submitted price is stored as-is rather
// than re-read from the catalog, so it reflects what the client saw at the
// time of the add.
func (u *CartUseCase) Add(ctx context.Context, userID, itemID int64, quantity int32, price float64) (*model.CartLine, error) {
	if quantity <= 0 || price <= 0 || itemID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.carts.Add(ctx, userID, itemID, quantity, price)
}

// View returns the user's cart lines in insertion order.
func (u *CartUseCase) View(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return u.carts.ListByUser(ctx, userID)
}

// UpdateQuantity changes the quantity of a line owned by the user.
// No upper bound is enforced.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, cartID int64, quantity int32) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidInput
	}
	return u.carts.UpdateQuantity(ctx, userID, cartID, quantity)
}

// Remove deletes a line owned by the user. Removing an already removed line
// yields ErrNotFound.
func (u *CartUseCase) Remove(ctx context.Context, userID, cartID int64) error {
	return u.carts.Remove(ctx, userID, cartID)
}
