package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/health"
)

type Deps struct {
	Products *Backend
	Orders   *Backend
}

func Register(e *echo.Echo, d *Deps) {
	health.Register(e, "api-gateway", "API Gateway")

	api := e.Group("/api")

	api.GET("/products", d.Products.Forward())
	api.GET("/products/:id", d.Products.Forward())
	api.GET("/orders", d.Orders.Forward())
	api.POST("/orders", d.Orders.Forward())
}
