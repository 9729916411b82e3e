package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/health"
)

type Deps struct {
	OrderHandler *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	health.Register(e, "order-service", "Order Service")

	e.GET("/orders", d.OrderHandler.GetOrders)
	e.POST("/orders", d.OrderHandler.CreateOrder)
	e.GET("/orders/:id", d.OrderHandler.GetOrder)
	e.PATCH("/orders/:id/status", d.OrderHandler.UpdateOrderStatus)
}
