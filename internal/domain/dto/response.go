package dto

const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
)

// ErrorResponse represents a standardized error response for the API.
// Dashboard metric endpoints never use it; they degrade to neutral payloads
// instead. It covers the infrastructure paths: panics and rate limiting.
//
// @Description Standardized error response
type ErrorResponse struct {
	Error     string `json:"error" example:"internal_error"`
	Message   string `json:"message,omitempty" example:"An unexpected error occurred"`
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: code, Message: message}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}
