package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"ecommerce-lookup/internal/config"
	"ecommerce-lookup/internal/database"
	"ecommerce-lookup/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
)

var trafficSources = []string{"Search", "Organic", "Email", "Display", "Facebook"}

var orderStatuses = []string{
	models.OrderStatusComplete,
	models.OrderStatusCancelled,
	models.OrderStatusShipped,
	models.OrderStatusProcessing,
	models.OrderStatusReturned,
}

func main() {
	customers := flag.Int("customers", 100, "number of customers to create")
	maxOrders := flag.Int("max-orders", 8, "maximum orders per customer (some customers get none)")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the current time")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on OS environment variables")
	}

	if *seed != 0 {
		gofakeit.Seed(*seed)
	}

	cfg := config.Load()
	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("seeding database",
		"driver", cfg.Database.Driver,
		"customers", *customers,
		"max_orders", *maxOrders)

	var totalOrders int
	for i := 0; i < *customers; i++ {
		customer := fakeCustomer()
		if err := db.DB.Create(customer).Error; err != nil {
			slog.Error("failed to create customer", "error", err)
			os.Exit(1)
		}

		// Roughly a third of customers have no orders at all, which
		// keeps the order_count=0 case represented in listings.
		n := 0
		if gofakeit.Number(0, 2) > 0 {
			n = gofakeit.Number(1, *maxOrders)
		}
		for j := 0; j < n; j++ {
			order := fakeOrder(customer)
			if err := db.DB.Create(order).Error; err != nil {
				slog.Error("failed to create order", "error", err)
				os.Exit(1)
			}
			totalOrders++
		}
	}

	slog.Info("seeding complete", "customers", *customers, "orders", totalOrders)
}

func fakeCustomer() *models.Customer {
	gender := "M"
	firstName := gofakeit.FirstName()
	if gofakeit.Bool() {
		gender = "F"
		firstName = gofakeit.FirstName()
	}

	addr := gofakeit.Address()
	return &models.Customer{
		FirstName:     firstName,
		LastName:      gofakeit.LastName(),
		Email:         gofakeit.Email(),
		Age:           gofakeit.Number(18, 75),
		Gender:        gender,
		State:         addr.State,
		StreetAddress: addr.Street,
		PostalCode:    addr.Zip,
		City:          addr.City,
		Country:       addr.Country,
		Latitude:      addr.Latitude,
		Longitude:     addr.Longitude,
		TrafficSource: trafficSources[gofakeit.Number(0, len(trafficSources)-1)],
		CreatedAt:     gofakeit.DateRange(time.Now().AddDate(-3, 0, 0), time.Now()),
	}
}

func fakeOrder(customer *models.Customer) *models.Order {
	createdAt := gofakeit.DateRange(customer.CreatedAt, time.Now())
	order := &models.Order{
		UserID:     customer.ID,
		Status:     orderStatuses[gofakeit.Number(0, len(orderStatuses)-1)],
		Gender:     customer.Gender,
		CreatedAt:  createdAt,
		NumOfItems: gofakeit.Number(1, 5),
	}

	switch order.Status {
	case models.OrderStatusShipped:
		shipped := createdAt.Add(time.Duration(gofakeit.Number(0, 71)) * time.Hour)
		order.ShippedAt = &shipped
	case models.OrderStatusComplete:
		shipped := createdAt.Add(time.Duration(gofakeit.Number(0, 71)) * time.Hour)
		delivered := shipped.Add(time.Duration(gofakeit.Number(0, 119)) * time.Hour)
		order.ShippedAt = &shipped
		order.DeliveredAt = &delivered
	case models.OrderStatusReturned:
		shipped := createdAt.Add(time.Duration(gofakeit.Number(0, 71)) * time.Hour)
		delivered := shipped.Add(time.Duration(gofakeit.Number(0, 119)) * time.Hour)
		returned := delivered.Add(time.Duration(gofakeit.Number(0, 239)) * time.Hour)
		order.ShippedAt = &shipped
		order.DeliveredAt = &delivered
		order.ReturnedAt = &returned
	}

	return order
}
