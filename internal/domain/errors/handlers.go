package errors

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of mutations that return nothing but a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
