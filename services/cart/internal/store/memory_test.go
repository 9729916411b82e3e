package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/cart/internal/models"
)

func TestMemoryStore_GetAbsent(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	cart, err := s.Get(context.Background(), "u1")
	require.Error(t, err)
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMemoryStore_SaveGetRoundtrip(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	cart := models.NewCart("u1")
	cart.Items = append(cart.Items, models.CartItem{ProductID: "1", ProductName: "Mug", Price: 7.5, Quantity: 2})
	cart.Recalculate()

	require.NoError(t, s.Save(ctx, cart))

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestMemoryStore_ReturnsIsolatedCopies(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	cart := models.NewCart("u1")
	cart.Items = append(cart.Items, models.CartItem{ProductID: "1", Price: 10, Quantity: 1})
	cart.Recalculate()
	require.NoError(t, s.Save(ctx, cart))

	// Mutating the saved value or a read result must not leak into the store.
	cart.Items[0].Quantity = 99

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)

	got.Items[0].Quantity = 42
	again, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestMemoryStore_DeleteIdempotent(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	cart := models.NewCart("u1")
	cart.Items = append(cart.Items, models.CartItem{ProductID: "1", Price: 10, Quantity: 1})
	require.NoError(t, s.Save(ctx, cart))

	require.NoError(t, s.Delete(ctx, "u1"))
	require.NoError(t, s.Delete(ctx, "u1"))

	_, err := s.Get(ctx, "u1")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
