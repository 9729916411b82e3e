package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/health"
)

type Deps struct {
	ProductHandler *ProductHTTP
}

func Register(e *echo.Echo, d *Deps) {
	health.Register(e, "product-service", "Product Service")

	e.GET("/products", d.ProductHandler.GetProducts)
	e.GET("/products/search", d.ProductHandler.SearchProducts)
	e.GET("/products/:id", d.ProductHandler.GetProduct)
	e.GET("/categories", d.ProductHandler.GetCategories)
}
