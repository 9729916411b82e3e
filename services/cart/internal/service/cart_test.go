package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/cart/internal/store"
	"github.com/minishop/minishop/services/cart/internal/transport"
)

func newTestCartService() *CartService {
	return &CartService{Store: store.NewMemoryStore()}
}

func ptr(v float64) *float64 { return &v }

func addReq(productID string, price float64, quantity int) transport.AddItemRequest {
	return transport.AddItemRequest{
		ProductID: transport.FlexID(productID),
		Price:     ptr(price),
		Quantity:  quantity,
	}
}

func TestCartService_Get_AbsentReturnsEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	cart, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, cart)

	assert.Equal(t, "u1", cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCartService_AddItem_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.AddItemRequest
	}{
		{name: "missing productId", req: transport.AddItemRequest{Price: ptr(10)}},
		{name: "missing price", req: transport.AddItemRequest{ProductID: "1"}},
		{name: "negative price", req: transport.AddItemRequest{ProductID: "1", Price: ptr(-1)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cart, err := svc.AddItem(ctx, "u1", tt.req)
			require.Error(t, err)
			assert.Nil(t, cart)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestCartService_AddItem_Defaults(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	cart, err := svc.AddItem(context.Background(), "u1", transport.AddItemRequest{
		ProductID: "42",
		Price:     ptr(9.99),
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	assert.Equal(t, "Product 42", cart.Items[0].ProductName)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 9.99, cart.Total)
}

func TestCartService_AddItem_SameProductIncrementsQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "u1", addReq("1", 10, 2))
	require.NoError(t, err)
	assert.Equal(t, 20.0, cart.Total)

	cart, err = svc.AddItem(ctx, "u1", addReq("1", 10, 1))
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 30.0, cart.Total)
}

func TestCartService_TotalMatchesItemSum(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	checkTotal := func(t *testing.T) {
		t.Helper()
		cart, err := svc.Get(ctx, "u1")
		require.NoError(t, err)

		var sum float64
		for _, it := range cart.Items {
			sum += it.Price * float64(it.Quantity)
		}
		assert.Equal(t, math.Round(sum*100)/100, cart.Total)
	}

	for i := 1; i <= 5; i++ {
		_, err := svc.AddItem(ctx, "u1", addReq(fmt.Sprint(i), float64(i)*3.33, i))
		require.NoError(t, err)
		checkTotal(t)
	}

	_, err := svc.SetItemQuantity(ctx, "u1", "3", 7)
	require.NoError(t, err)
	checkTotal(t)

	_, err = svc.RemoveItem(ctx, "u1", "5")
	require.NoError(t, err)
	checkTotal(t)
}

func TestCartService_SetItemQuantity_SetsValue(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addReq("1", 10, 2))
	require.NoError(t, err)

	cart, err := svc.SetItemQuantity(ctx, "u1", "1", 5)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 50.0, cart.Total)
}

func TestCartService_SetItemQuantity_ZeroRemovesItem(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addReq("1", 10, 2))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", addReq("2", 5, 1))
	require.NoError(t, err)

	cart, err := svc.SetItemQuantity(ctx, "u1", "1", 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].ProductID)
	assert.Equal(t, 5.0, cart.Total)
}

func TestCartService_SetItemQuantity_LastItemRemovalResetsCart(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addReq("1", 10, 2))
	require.NoError(t, err)

	cart, err := svc.SetItemQuantity(ctx, "u1", "1", -1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = svc.SetItemQuantity(ctx, "u1", "1", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCartService_SetItemQuantity_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.SetItemQuantity(ctx, "nobody", "1", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.AddItem(ctx, "u1", addReq("1", 10, 1))
	require.NoError(t, err)

	_, err = svc.SetItemQuantity(ctx, "u1", "99", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addReq("1", 10, 2))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", addReq("2", 5, 1))
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "u1", "1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5.0, cart.Total)

	// Missing item is a no-op, missing cart is not.
	cart, err = svc.RemoveItem(ctx, "u1", "99")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	_, err = svc.RemoveItem(ctx, "nobody", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCartService_Clear_Idempotent(t *testing.T) {
	t.Parallel()

	svc := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", addReq("1", 10, 2))
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "u1"))
	require.NoError(t, svc.Clear(ctx, "u1"))

	cart, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}
