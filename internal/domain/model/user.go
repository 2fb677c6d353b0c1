package model

import "time"

// Role describes what a principal may do on the platform.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTruckOwner Role = "truckOwner"
)

// Valid reports whether the role belongs to the known set.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleTruckOwner
}

// User represents a registered account, either a customer or a truck owner.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	// TruckID references the owned truck; set only for truck owners.
	TruckID   *int64
	CreatedAt time.Time
}

// Principal is the resolved identity attached to an authenticated request.
type Principal struct {
	UserID  int64
	Role    Role
	TruckID *int64
}
