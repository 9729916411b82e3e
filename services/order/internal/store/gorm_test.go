package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/order/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// every sqlite :memory: connection opens its own database
	sqlDB.SetMaxOpenConns(1)
	return gdb
}

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()

	s, err := NewGormStore(newTestDB(t), Seed())
	require.NoError(t, err)
	return s
}

func TestGormStore_SeedsEmptyTableOnce(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s, err := NewGormStore(db, Seed())
	require.NoError(t, err)

	orders, err := s.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 4)
	assert.Equal(t, "Laptop Pro", orders[0].ProductName)

	// a second migration against the same database must not duplicate rows
	_, err = NewGormStore(db, Seed())
	require.NoError(t, err)

	orders, err = s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, orders, 4)
}

func TestGormStore_ListFiltersStatusCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := newTestGormStore(t)

	orders, err := s.List(context.Background(), "SHIPPED")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(2), orders[0].ID)

	orders, err = s.List(context.Background(), "cancelled")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGormStore_CreateContinuesFromSeededIDs(t *testing.T) {
	t.Parallel()

	s := newTestGormStore(t)
	created := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	first, err := s.Create(context.Background(), models.Order{
		ProductID:   2,
		ProductName: "Wireless Headphones",
		Quantity:    1,
		Status:      models.StatusPending,
		Total:       199.99,
		CreatedAt:   created,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.ID)
	assert.True(t, first.CreatedAt.Equal(created))

	second, err := s.Create(context.Background(), models.Order{ProductID: 3, Status: models.StatusPending, CreatedAt: created})
	require.NoError(t, err)
	assert.Equal(t, int64(6), second.ID)

	orders, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, orders, 6)
}

func TestGormStore_GetByID(t *testing.T) {
	t.Parallel()

	s := newTestGormStore(t)

	order, err := s.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", order.ProductName)
	assert.Equal(t, 2, order.Quantity)

	_, err = s.GetByID(context.Background(), 99)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestGormStore_UpdateStatus(t *testing.T) {
	t.Parallel()

	s := newTestGormStore(t)

	order, err := s.UpdateStatus(context.Background(), 3, models.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, order.Status)

	got, err := s.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, got.Status)

	_, err = s.UpdateStatus(context.Background(), 99, models.StatusShipped)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
