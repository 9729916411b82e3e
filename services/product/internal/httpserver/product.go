package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/services/product/internal/service"
	"github.com/minishop/minishop/services/product/internal/store"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func priceParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errs.Validationf("%s must be a number", name)
	}
	return &v, nil
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	minPrice, err := priceParam(c, "minPrice")
	if err != nil {
		return err
	}
	maxPrice, err := priceParam(c, "maxPrice")
	if err != nil {
		return err
	}

	products, err := h.Svc.List(ctx, store.Filter{
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		return err
	}

	l.Info("list_products_success", "count", len(products))
	return c.JSON(http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errs.Validationf("id is not integer")
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		return err
	}

	l.Info("get_product_success", "id", id)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.categories")

	categories, err := h.Svc.Categories(ctx)
	if err != nil {
		return err
	}

	l.Info("list_categories_success", "count", len(categories))
	return c.JSON(http.StatusOK, map[string]any{"categories": categories})
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	if q == "" {
		return errs.Validationf("q is required")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.Svc.SearchProducts(ctx, q, limit)
	if err != nil {
		return err
	}

	l.Info("search_products_success", "q", q, "count", len(products))
	return c.JSON(http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}
