package service

import (
	"context"
	"strings"

	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/services/product/internal/models"
	"github.com/minishop/minishop/services/product/internal/search"
	"github.com/minishop/minishop/services/product/internal/store"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type ProductService struct {
	Store  store.Store
	Search *search.Client // optional; substring scan used when nil
}

func (s *ProductService) List(ctx context.Context, f store.Filter) ([]models.Product, error) {
	return s.Store.List(ctx, f)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.Store.Categories(ctx)
}

// SearchProducts queries the search index when one is configured, falling
// back to a substring scan over the catalog when there is no index or the
// index is unreachable.
func (s *ProductService) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	if s.Search != nil {
		products, err := s.Search.Search(ctx, query, limit)
		if err == nil {
			return products, nil
		}
		logging.FromContext(ctx).Warn("search_index_unavailable", "error", err)
	}
	return s.scan(ctx, query, limit)
}

func (s *ProductService) scan(ctx context.Context, query string, limit int) ([]models.Product, error) {
	all, err := s.Store.List(ctx, store.Filter{})
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Product, 0, limit)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
