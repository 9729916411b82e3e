package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/health"
)

type Deps struct {
	CartHandler *CartHTTP
}

func Register(e *echo.Echo, d *Deps) {
	health.Register(e, "cart-service", "Cart Service")

	cart := e.Group("/cart/:userId")

	cart.GET("", d.CartHandler.GetCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/items", d.CartHandler.AddItem)
	cart.PATCH("/items/:productId", d.CartHandler.UpdateItem)
	cart.DELETE("/items/:productId", d.CartHandler.RemoveItem)
}
