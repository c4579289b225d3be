package dto

// ErrorResponse is the flat error body every endpoint returns. The
// dashboard front end reads the "error" key directly, so the shape stays
// minimal. Internal error detail goes to the log, never into the body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse is the flat success body used by mutation endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
