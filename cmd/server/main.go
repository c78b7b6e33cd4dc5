package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-lookup/internal/config"
	"ecommerce-lookup/internal/database"
	"ecommerce-lookup/internal/handlers"
	"ecommerce-lookup/internal/middleware"
	"ecommerce-lookup/internal/repositories"
	"ecommerce-lookup/internal/services"
	"ecommerce-lookup/web"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	e := buildServer(cfg, db)

	go func() {
		slog.Info("server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"health", "http://localhost:"+cfg.Server.Port+"/health")
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}

// buildServer wires the repositories, services and handlers onto an
// echo instance with the full middleware chain and route table.
func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	customerRepo := repositories.NewCustomerRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	customerService := services.NewCustomerService(customerRepo, orderRepo)
	orderService := services.NewOrderService(orderRepo)

	customerHandler := handlers.NewCustomerHandler(customerService, metrics)
	orderHandler := handlers.NewOrderHandler(orderService, metrics)
	healthHandler := handlers.NewHealthCheckHandler()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(rateLimiter.Middleware())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/customers", customerHandler.ListCustomers)
	e.GET("/customers/:id", customerHandler.GetCustomer)
	e.GET("/customers/:id/orders", customerHandler.ListCustomerOrders)
	e.GET("/orders/:orderId", orderHandler.GetOrder)

	web.RegisterRoutes(e)

	return e
}
