package errors

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`                // User-facing message
	Code      string `json:"code,omitempty"`       // Business error code, e.g. "COURSE_NOT_FOUND"
	Details   any    `json:"details,omitempty"`    // Only for client errors, or any error in debug mode
	RequestID string `json:"request_id,omitempty"` // Request tracking ID
}

// MessageResponse is a body carrying a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
