package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/order/internal/models"
	"github.com/minishop/minishop/services/order/internal/service"
	"github.com/minishop/minishop/services/order/internal/store"
)

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
	Count  int            `json:"count"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errs.HTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	Register(e, &Deps{
		OrderHandler: &OrderHTTP{
			Svc: &service.OrderService{Store: store.NewMemoryStore(store.Seed())},
		},
	})
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp["error"]
}

func TestGetOrders(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ordersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Count)
	require.Len(t, resp.Orders, 4)
	assert.Equal(t, "Laptop Pro", resp.Orders[0].ProductName)
}

func TestGetOrders_StatusFilter(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodGet, "/orders?status=SHIPPED", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ordersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(2), resp.Orders[0].ID)
	assert.Equal(t, models.StatusShipped, resp.Orders[0].Status)
}

func TestGetOrder(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/orders/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "Wireless Headphones", order.ProductName)
	assert.Equal(t, 399.98, order.Total)

	rec = doJSON(t, e, http.MethodGet, "/orders/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeError(t, rec))

	rec = doJSON(t, e, http.MethodGet, "/orders/latest", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeError(t, rec))
}

func TestCreateOrder_RequiresProductID(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/orders", map[string]any{"product_name": "Desk Lamp"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "product_id is required", decodeError(t, rec))
}

func TestCreateOrder_Defaults(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/orders", map[string]any{"product_id": 7})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, int64(5), order.ID)
	assert.Equal(t, int64(7), order.ProductID)
	assert.Equal(t, "Unknown", order.ProductName)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Zero(t, order.Total)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrder_FullBody(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/orders", map[string]any{
		"product_id":   2,
		"product_name": "Wireless Headphones",
		"quantity":     2,
		"total":        399.98,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, int64(5), order.ID)
	assert.Equal(t, "Wireless Headphones", order.ProductName)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, 399.98, order.Total)

	// The new order shows up in the listing.
	rec = doJSON(t, e, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ordersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPatch, "/orders/3/status", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, models.StatusShipped, order.Status)

	rec = doJSON(t, e, http.MethodPatch, "/orders/3/status", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status is required", decodeError(t, rec))

	rec = doJSON(t, e, http.MethodPatch, "/orders/3/status", map[string]any{"status": "teleported"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status. Must be one of: pending, processing, shipped, delivered, cancelled", decodeError(t, rec))

	rec = doJSON(t, e, http.MethodPatch, "/orders/99/status", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeError(t, rec))
}
