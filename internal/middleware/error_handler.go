package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"ecommerce-lookup/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler formats every error echo surfaces as the
// standardized {error, message} body. Undefined routes land here as
// echo 404s and become the catch-all not-found response.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	if echoErr, ok := err.(*echo.HTTPError); ok {
		switch echoErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			errorResponse = errors.NewErrorResponse(
				errors.RouteNotFound,
				errors.WithMessagef("Route %s not found", c.Request().URL.Path),
			)
			httpStatus = http.StatusNotFound
		default:
			errorResponse = errors.NewErrorResponse(
				errors.SystemInternalError,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		}
	} else if _, ok := err.(validator.ValidationErrors); ok {
		errorResponse = errors.NewErrorResponse(errors.ValidationPagination)
		httpStatus = http.StatusBadRequest
	} else {
		errorResponse = errors.NewErrorResponse(errors.SystemInternalError)
		httpStatus = http.StatusInternalServerError
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error,
		"status", httpStatus,
		"message", errorResponse.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if c.Response().Committed {
		return
	}

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}
