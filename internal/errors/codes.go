package errors

import "net/http"

// ErrorCode identifies a class of API failure. The string value is the
// short code exposed in the response body's "error" field.
type ErrorCode string

// Validation error codes (400)
const (
	ValidationPagination ErrorCode = "Invalid pagination parameters"
	ValidationCustomerID ErrorCode = "Invalid customer ID"
	ValidationOrderID    ErrorCode = "Invalid order ID"
)

// Not-found error codes (404)
const (
	CustomerNotFound ErrorCode = "Customer not found"
	OrderNotFound    ErrorCode = "Order not found"
	RouteNotFound    ErrorCode = "Not found"
)

// System error codes
const (
	SystemInternalError     ErrorCode = "Internal server error"
	SystemRateLimitExceeded ErrorCode = "Too many requests"
)

// errorMessages maps error codes to their default human-readable messages.
var errorMessages = map[ErrorCode]string{
	ValidationPagination: "Page must be >= 1, limit must be between 1 and 100.",
	ValidationCustomerID: "Must be a positive integer.",
	ValidationOrderID:    "Must be a positive integer.",

	CustomerNotFound: "Customer not found",
	OrderNotFound:    "Order not found",
	RouteNotFound:    "Route not found",

	SystemInternalError:     "Something went wrong",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later.",
}

// GetErrorMessage returns the default message for a given error code.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code.
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// GetHTTPStatus returns the HTTP status code for the error code.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationPagination, ValidationCustomerID, ValidationOrderID:
		return http.StatusBadRequest

	case CustomerNotFound, OrderNotFound, RouteNotFound:
		return http.StatusNotFound

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemInternalError:
		return http.StatusInternalServerError

	default:
		// Unknown error codes default to 500
		return http.StatusInternalServerError
	}
}
