package dto

// MessageResponse is the standard success envelope for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
