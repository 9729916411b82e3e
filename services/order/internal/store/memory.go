package store

import (
	"context"
	"strings"
	"sync"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/order/internal/models"
)

type MemoryStore struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int64
}

func NewMemoryStore(seed []models.Order) *MemoryStore {
	var maxID int64
	for _, o := range seed {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	return &MemoryStore{
		orders: append([]models.Order(nil), seed...),
		nextID: maxID + 1,
	}
}

func (s *MemoryStore) List(_ context.Context, status string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status == "" || strings.EqualFold(o.Status, status) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, errs.NotFoundf("Order not found")
}

func (s *MemoryStore) Create(_ context.Context, order models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextID
	s.nextID++
	s.orders = append(s.orders, order)

	out := order
	return &out, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id int64, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			out := s.orders[i]
			return &out, nil
		}
	}
	return nil, errs.NotFoundf("Order not found")
}
