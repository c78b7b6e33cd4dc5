package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// HealthHandlerTestSuite is the test suite for HealthCheckHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	handler *HealthCheckHandler
	echo    *echo.Echo
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.handler = NewHealthCheckHandler()
	s.echo = echo.New()
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal("OK", resp.Status)
	s.GreaterOrEqual(resp.Uptime, 0.0)

	// Timestamp is RFC3339 and close to now.
	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	s.NoError(err)
	s.WithinDuration(time.Now().UTC(), ts, 5*time.Second)
}

func (s *HealthHandlerTestSuite) TestHealthCheck_UptimeGrows() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	rec1 := httptest.NewRecorder()
	s.NoError(s.handler.HealthCheck(s.echo.NewContext(req, rec1)))

	time.Sleep(10 * time.Millisecond)

	rec2 := httptest.NewRecorder()
	s.NoError(s.handler.HealthCheck(s.echo.NewContext(req, rec2)))

	var first, second HealthResponse
	s.Require().NoError(json.Unmarshal(rec1.Body.Bytes(), &first))
	s.Require().NoError(json.Unmarshal(rec2.Body.Bytes(), &second))

	s.Greater(second.Uptime, first.Uptime)
}
