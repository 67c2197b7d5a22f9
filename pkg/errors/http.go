package errors

import "net/http"

// HTTPError is an error carrying the status code and user-facing message
// the delivery layer should respond with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status, defaulting to 400 when unset.
func (e *HTTPError) StatusCode() int {
	if e.Code == 0 {
		return http.StatusBadRequest
	}
	return e.Code
}
