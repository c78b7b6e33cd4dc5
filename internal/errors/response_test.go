package errors

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_DefaultMessage() {
	resp := NewErrorResponse(CustomerNotFound)

	s.Equal("Customer not found", resp.Error)
	s.Equal("Customer not found", resp.Message)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	resp := NewErrorResponse(CustomerNotFound, WithMessage("No customer found with ID 42"))

	s.Equal("Customer not found", resp.Error)
	s.Equal("No customer found with ID 42", resp.Message)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMessagef() {
	resp := NewErrorResponse(OrderNotFound, WithMessagef("No order found with ID %d", 999999))

	s.Equal("Order not found", resp.Error)
	s.Equal("No order found with ID 999999", resp.Message)
}

func (s *ResponseTestSuite) TestToJSON_FlatBody() {
	resp := NewErrorResponse(ValidationPagination)

	data, err := resp.ToJSON()
	s.NoError(err)

	// The wire body is flat: exactly "error" and "message".
	var decoded map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Len(decoded, 2)
	s.Equal("Invalid pagination parameters", decoded["error"])
	s.Equal("Page must be >= 1, limit must be between 1 and 100.", decoded["message"])
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	cause := errors.New("SQLITE_BUSY: database is locked")

	resp, internal := WrapSystemError(cause, "customers")

	s.Equal("Internal server error", resp.Error)
	s.Equal("Failed to fetch customers", resp.Message)
	s.Equal(cause, internal)

	// Driver detail must never appear in the client body.
	data, err := resp.ToJSON()
	s.NoError(err)
	s.NotContains(string(data), "SQLITE_BUSY")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	s.Equal(400, NewErrorResponse(ValidationOrderID).GetHTTPStatus())
	s.Equal(404, NewErrorResponse(OrderNotFound).GetHTTPStatus())
	s.Equal(429, NewErrorResponse(SystemRateLimitExceeded).GetHTTPStatus())
	s.Equal(500, NewErrorResponse(SystemInternalError).GetHTTPStatus())
}

func (s *ResponseTestSuite) TestIsClientError() {
	s.True(NewErrorResponse(ValidationPagination).IsClientError())
	s.True(NewErrorResponse(CustomerNotFound).IsClientError())
	s.False(NewErrorResponse(SystemInternalError).IsClientError())
}

func (s *ResponseTestSuite) TestIsServerError() {
	s.True(NewErrorResponse(SystemInternalError).IsServerError())
	s.False(NewErrorResponse(RouteNotFound).IsServerError())
}

func (s *ResponseTestSuite) TestString() {
	resp := NewErrorResponse(RouteNotFound, WithMessage("Route /nope not found"))

	s.Equal("[Not found] Route /nope not found", resp.String())
}
