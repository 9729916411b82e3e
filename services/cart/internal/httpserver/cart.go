package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/events"
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/services/cart/internal/service"
	"github.com/minishop/minishop/services/cart/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) publish(c echo.Context, userID string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.Publish(ctx, events.TopicCart, userID, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", events.TopicCart, "error", err)
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	cart, err := h.Svc.Get(ctx, c.Param("userId"))
	if err != nil {
		return err
	}

	l.Info("get_cart_success", "items", len(cart.Items))
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return errs.Validationf("invalid body")
	}

	userID := c.Param("userId")
	cart, err := h.Svc.AddItem(ctx, userID, req)
	if err != nil {
		return err
	}

	h.publish(c, userID, map[string]any{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": string(req.ProductID),
	})
	l.Info("add_item_success", "productID", string(req.ProductID), "total", cart.Total)
	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_item")

	var req transport.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return errs.Validationf("invalid body")
	}
	if req.Quantity == nil {
		return errs.Validationf("quantity is required")
	}

	userID := c.Param("userId")
	productID := c.Param("productId")
	cart, err := h.Svc.SetItemQuantity(ctx, userID, productID, *req.Quantity)
	if err != nil {
		return err
	}

	h.publish(c, userID, map[string]any{
		"type":      "cart_item_updated",
		"userID":    userID,
		"productID": productID,
		"quantity":  *req.Quantity,
	})
	l.Info("update_item_success", "productID", productID, "total", cart.Total)
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	userID := c.Param("userId")
	productID := c.Param("productId")
	cart, err := h.Svc.RemoveItem(ctx, userID, productID)
	if err != nil {
		return err
	}

	h.publish(c, userID, map[string]any{
		"type":      "cart_item_removed",
		"userID":    userID,
		"productID": productID,
	})
	l.Info("remove_item_success", "productID", productID, "total", cart.Total)
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	userID := c.Param("userId")
	if err := h.Svc.Clear(ctx, userID); err != nil {
		return err
	}

	h.publish(c, userID, map[string]any{
		"type":   "cart_cleared",
		"userID": userID,
	})
	l.Info("clear_cart_success")
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
