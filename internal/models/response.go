package models

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// APIResponse is the envelope for every API payload
type APIResponse[T any] struct {
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Error   string            `json:"error,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// OK wraps data in a successful response
func OK[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}

// Fail builds an unsuccessful response with no payload
func Fail(message string) APIResponse[any] {
	return APIResponse[any]{Success: false, Error: message}
}

// Invalid builds an unsuccessful response listing field errors
func Invalid(message string, errs []ValidationError) APIResponse[any] {
	return APIResponse[any]{Success: false, Error: message, Errors: errs}
}
