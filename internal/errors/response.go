package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse is the standardized API error body: a short code under
// "error" and a human-readable explanation under "message".
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorOption is a functional option for configuring error responses.
type ErrorOption func(*ErrorResponse)

// WithMessage overrides the default message for the error code.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// WithMessagef overrides the default message with a formatted string.
func WithMessagef(format string, args ...any) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = fmt.Sprintf(format, args...)
	}
}

// NewErrorResponse creates a standardized error response for the given
// error code. Optional overrides are applied via functional options.
func NewErrorResponse(code ErrorCode, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error:   string(code),
		Message: GetErrorMessage(code),
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// WrapSystemError builds a generic internal error response so that no
// database or driver detail leaks to the client. The wrapped error is
// returned separately for server-side logging.
func WrapSystemError(err error, resource string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Error:   string(SystemInternalError),
		Message: fmt.Sprintf("Failed to fetch %s", resource),
	}
	return response, err
}

// ToJSON serializes the error response to JSON bytes.
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the HTTP status code for the error response.
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error))
}

// IsClientError returns true if the error is a 4xx client error.
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error.
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response.
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s", er.Error, er.Message)
}
