package store

import (
	"context"

	"github.com/minishop/minishop/services/order/internal/models"
)

type Store interface {
	// List returns orders, optionally narrowed to a status
	// (case-insensitive match).
	List(ctx context.Context, status string) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	// Create assigns the next order id and persists the order.
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error)
}
