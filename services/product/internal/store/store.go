package store

import (
	"context"
	"strings"

	"github.com/minishop/minishop/services/product/internal/models"
)

// Filter narrows a product listing. Zero value matches everything.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (f Filter) Matches(p models.Product) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

type Store interface {
	List(ctx context.Context, f Filter) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}
