package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflictingTruck   = errors.New("cannot order from multiple trucks")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrTruckUnavailable   = errors.New("truck is not accepting orders")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
)
