package store

import (
	"time"

	"github.com/minishop/minishop/services/order/internal/models"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the mock orders present at startup. Ids 1 through 4 are
// taken, so the first created order gets id 5.
func Seed() []models.Order {
	return []models.Order{
		{ID: 1, ProductID: 1, ProductName: "Laptop Pro", Quantity: 1, Status: models.StatusDelivered, Total: 1299.99, CreatedAt: ts("2024-01-01T10:00:00Z")},
		{ID: 2, ProductID: 2, ProductName: "Wireless Headphones", Quantity: 2, Status: models.StatusShipped, Total: 399.98, CreatedAt: ts("2024-01-02T14:30:00Z")},
		{ID: 3, ProductID: 3, ProductName: "Coffee Maker Deluxe", Quantity: 1, Status: models.StatusPending, Total: 89.99, CreatedAt: ts("2024-01-03T09:15:00Z")},
		{ID: 4, ProductID: 4, ProductName: "Smart Watch", Quantity: 1, Status: models.StatusProcessing, Total: 349.99, CreatedAt: ts("2024-01-04T11:45:00Z")},
	}
}
