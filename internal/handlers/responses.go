package handlers

import (
	"log/slog"
	"net/http"

	"ecommerce-lookup/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ListResponse is the success envelope for paginated endpoints: rows
// under "data" with a sibling "pagination" object.
type ListResponse struct {
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination"`
}

// DataResponse is the success envelope for single-resource endpoints.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is an alias for the standardized error response type.
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context.
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response for client errors and
// not-found outcomes.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError responds with a generic internal error and logs the
// underlying cause server-side. Store error text never reaches the client.
func SendSystemError(c echo.Context, err error, resource string) error {
	errorResponse, internal := errors.WrapSystemError(err, resource)

	slog.Error("internal error",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", internal.Error(),
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}
