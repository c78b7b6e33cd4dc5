package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesTraceID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		assert.NotEmpty(t, GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	traceID := rec.Header().Get(TraceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestRequestID_PropagatesIncomingTraceID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "incoming-trace-id", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.Header.Set(TraceIDHeader, "incoming-trace-id")
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, "incoming-trace-id", rec.Header().Get(TraceIDHeader))
}

func TestGetTraceID_MissingReturnsEmpty(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
