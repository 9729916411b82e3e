package store

import (
	"context"
	"sort"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/services/product/internal/models"
)

// MemoryStore serves a catalog fixed at construction time. The backing slice
// is never mutated afterwards, so concurrent reads need no locking.
type MemoryStore struct {
	products []models.Product
}

func NewMemoryStore(products []models.Product) *MemoryStore {
	return &MemoryStore{products: products}
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, errs.NotFoundf("Product not found")
}

func (s *MemoryStore) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool, len(s.products))
	out := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}
