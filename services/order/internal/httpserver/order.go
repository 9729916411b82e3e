package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/events"
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/services/order/internal/service"
	"github.com/minishop/minishop/services/order/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.Publish(ctx, events.TopicOrder, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", events.TopicOrder, "error", err)
	}
}

// orderID parses the path id. A non-numeric id cannot name an order, so it
// reads as absent rather than malformed.
func orderID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NotFoundf("Order not found")
	}
	return id, nil
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	orders, err := h.Svc.List(ctx, c.QueryParam("status"))
	if err != nil {
		return err
	}

	l.Info("list_orders_success", "count", len(orders))
	return c.JSON(http.StatusOK, map[string]any{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := orderID(c)
	if err != nil {
		return err
	}

	order, err := h.Svc.Get(ctx, id)
	if err != nil {
		return err
	}

	l.Info("get_order_success", "id", id)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errs.Validationf("invalid body")
	}

	order, err := h.Svc.Create(ctx, req)
	if err != nil {
		return err
	}

	h.publish(c, strconv.FormatInt(order.ID, 10), map[string]any{
		"type":      "order_created",
		"orderID":   order.ID,
		"productID": order.ProductID,
		"total":     order.Total,
	})
	l.Info("create_order_success", "id", order.ID, "total", order.Total)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := orderID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return errs.Validationf("invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return err
	}

	h.publish(c, strconv.FormatInt(order.ID, 10), map[string]any{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})
	l.Info("update_status_success", "id", id, "status", order.Status)
	return c.JSON(http.StatusOK, order)
}
