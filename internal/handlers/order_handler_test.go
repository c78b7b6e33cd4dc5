package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecommerce-lookup/internal/dto"
	"ecommerce-lookup/internal/services"
	"ecommerce-lookup/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// OrderHandlerTestSuite is the test suite for OrderHandler
type OrderHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockOrderServiceInterface
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	handler     *OrderHandler
	echo        *echo.Echo
}

func (s *OrderHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockOrderServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewOrderHandler(s.mockService, s.mockMetrics)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) newContext(orderID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("orderId")
	c.SetParamValues(orderID)
	return c, rec
}

func (s *OrderHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *OrderHandlerTestSuite) TestGetOrder_Success() {
	first, last := "Jane", "Doe"
	detail := &dto.OrderDetail{
		ID:         101,
		UserID:     1,
		Status:     "Complete",
		CreatedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		NumOfItems: 3,
		FirstName:  &first,
		LastName:   &last,
	}
	s.mockService.EXPECT().GetOrder(int64(101)).Return(detail, nil)
	s.mockMetrics.EXPECT().RecordQueryDuration("get_order", gomock.Any()).Times(1)
	s.mockMetrics.EXPECT().IncrementCounter("get_order", map[string]string{"status": "success"}).Times(1)

	c, rec := s.newContext("101")
	s.NoError(s.handler.GetOrder(c))

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.GetOrderResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(101), resp.Data.ID)
	s.Require().NotNil(resp.Data.FirstName)
	s.Equal("Jane", *resp.Data.FirstName)
}

func (s *OrderHandlerTestSuite) TestGetOrder_DanglingCustomerOmitsJoinFields() {
	detail := &dto.OrderDetail{ID: 101, UserID: 42, Status: "Complete"}
	s.mockService.EXPECT().GetOrder(int64(101)).Return(detail, nil)
	s.mockMetrics.EXPECT().RecordQueryDuration("get_order", gomock.Any()).Times(1)
	s.mockMetrics.EXPECT().IncrementCounter("get_order", map[string]string{"status": "success"}).Times(1)

	c, rec := s.newContext("101")
	s.NoError(s.handler.GetOrder(c))

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "first_name")
	s.NotContains(rec.Body.String(), "email")
}

func (s *OrderHandlerTestSuite) TestGetOrder_NotFound() {
	s.mockService.EXPECT().GetOrder(int64(999999)).Return(nil, services.ErrOrderNotFound)
	s.mockMetrics.EXPECT().RecordQueryDuration("get_order", gomock.Any()).Times(1)

	c, rec := s.newContext("999999")
	s.NoError(s.handler.GetOrder(c))

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.decodeError(rec)
	s.Equal("Order not found", body["error"])
	s.Equal("No order found with ID 999999", body["message"])
}

func (s *OrderHandlerTestSuite) TestGetOrder_InvalidID() {
	c, rec := s.newContext("abc")
	s.NoError(s.handler.GetOrder(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid order ID", s.decodeError(rec)["error"])
}

func (s *OrderHandlerTestSuite) TestGetOrder_NegativeID() {
	c, rec := s.newContext("-5")
	s.NoError(s.handler.GetOrder(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) TestGetOrder_ServiceFailure() {
	s.mockService.EXPECT().GetOrder(int64(101)).Return(nil, errors.New("database is locked"))
	s.mockMetrics.EXPECT().RecordQueryDuration("get_order", gomock.Any()).Times(1)
	s.mockMetrics.EXPECT().IncrementCounter("get_order", map[string]string{"status": "failed"}).Times(1)

	c, rec := s.newContext("101")
	s.NoError(s.handler.GetOrder(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decodeError(rec)
	s.Equal("Internal server error", body["error"])
	s.Equal("Failed to fetch order details", body["message"])
	s.NotContains(rec.Body.String(), "database is locked")
}
