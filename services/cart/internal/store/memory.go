package store

import (
	"context"
	"sync"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/cart/internal/models"
)

// MemoryStore is the default volatile backend: one map guarded by an RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*models.Cart)}
}

func (m *MemoryStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cart, ok := m.carts[userID]
	if !ok {
		return nil, errs.NotFoundf("cart %q", userID)
	}
	return cart.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[cart.UserID] = cart.Clone()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, userID)
	return nil
}
