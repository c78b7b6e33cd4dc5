package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "ecommerce-lookup/internal/errors"
	"ecommerce-lookup/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService services.OrderServiceInterface
	metrics      services.MetricsRecorderInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderServiceInterface, metrics services.MetricsRecorderInterface) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		metrics:      metrics,
	}
}

// GetOrder returns one order joined with its owning customer
// @Summary Get order details
// @Description Single order with the owning customer's name, email, city and country
// @Tags Orders
// @Produce json
// @Param orderId path int true "Order ID (positive integer)"
// @Success 200 {object} dto.GetOrderResponse "Order detail"
// @Failure 400 {object} errors.ErrorResponse "Invalid order ID"
// @Failure 404 {object} errors.ErrorResponse "Order not found"
// @Failure 500 {object} errors.ErrorResponse "Internal server error"
// @Router /orders/{orderId} [get]
func (h *OrderHandler) GetOrder(c echo.Context) error {
	startTime := time.Now()

	orderID, ok := parsePositiveID(c, "orderId")
	if !ok {
		return SendError(c, apierrors.ValidationOrderID)
	}

	order, err := h.orderService.GetOrder(orderID)
	h.metrics.RecordQueryDuration("get_order", time.Since(startTime))

	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return SendError(c, apierrors.OrderNotFound,
				apierrors.WithMessagef("No order found with ID %d", orderID))
		}
		h.metrics.IncrementCounter("get_order", map[string]string{"status": "failed"})
		return SendSystemError(c, err, "order details")
	}

	h.metrics.IncrementCounter("get_order", map[string]string{"status": "success"})

	return c.JSON(http.StatusOK, DataResponse{Data: order})
}
