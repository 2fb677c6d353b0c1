package repository

import (
	"context"

	"github.com/grubtruck/grubtruck/internal/domain/model"
)

// CartRepository describes persistence operations for cart lines.
type CartRepository interface {
	// Add inserts a new line for the user. The referenced item must exist
	// and be available, and the line must not break the single-truck
	// invariant; the check and the insert run inside one transaction
	// serialized per user.
	Add(ctx context.Context, userID, itemID int64, quantity int32, price float64) (*model.CartLine, error)
	// ListByUser returns the user's lines in insertion order, joined with
	// item names and owning truck ids.
	ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, cartID int64, quantity int32) error
	Remove(ctx context.Context, userID, cartID int64) error
}
