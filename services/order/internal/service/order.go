package service

import (
	"context"
	"strings"
	"time"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/order/internal/models"
	"github.com/minishop/minishop/services/order/internal/store"
	"github.com/minishop/minishop/services/order/internal/transport"
)

type OrderService struct {
	Store store.Store
}

func (s *OrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	return s.Store.List(ctx, status)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.ProductID == nil {
		return nil, errs.Validationf("product_id is required")
	}

	order := models.Order{
		ProductID:   *req.ProductID,
		ProductName: "Unknown",
		Quantity:    1,
		Status:      models.StatusPending,
		Total:       0,
		CreatedAt:   time.Now().UTC(),
	}
	if req.ProductName != nil {
		order.ProductName = *req.ProductName
	}
	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.Total != nil {
		order.Total = *req.Total
	}

	return s.Store.Create(ctx, order)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status *string) (*models.Order, error) {
	if status == nil {
		return nil, errs.Validationf("status is required")
	}
	if !models.IsValidStatus(*status) {
		return nil, errs.Validationf("Invalid status. Must be one of: %s", strings.Join(models.ValidStatuses, ", "))
	}
	return s.Store.UpdateStatus(ctx, id, *status)
}
