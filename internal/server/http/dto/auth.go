package dto

// RegisterRequest describes the account creation payload. TruckName is
// required for truck-owner registrations only. Email is an alias for Login
// accepted for clients that identify accounts by address.
type RegisterRequest struct {
	Login     string `json:"login"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	TruckName string `json:"truckName"`
}

// LoginRequest describes the credential payload; Email aliases Login.
type LoginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse describes the authenticated account.
type UserResponse struct {
	UserID  int64  `json:"userId"`
	Login   string `json:"login"`
	Role    string `json:"role"`
	TruckID *int64 `json:"truckId,omitempty"`
}
