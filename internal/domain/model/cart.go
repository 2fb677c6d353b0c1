package model

import "time"

// CartLine is one pending selection in a customer's cart. Price is captured
// when the line is added and never re-read from the catalog afterwards, so it
// may drift from the current menu price until checkout.
//
// All lines owned by one user reference items of the same truck; the invariant
// is enforced on every insert.
type CartLine struct {
	ID       int64
	UserID   int64
	ItemID   int64
	Quantity int32
	Price    float64
	// ItemName and TruckID are denormalized from the referenced menu item
	// when lines are read back.
	ItemName  string
	TruckID   int64
	CreatedAt time.Time
}

// Subtotal returns the line price multiplied by quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
