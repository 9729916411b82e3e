// Package store owns cart state behind a small get/put/delete interface so a
// persistent backend can replace the in-memory default without touching
// handlers.
package store

import (
	"context"

	"github.com/minishop/minishop/services/cart/internal/models"
)

type Store interface {
	// Get returns the cart for userID or errs.ErrNotFound.
	Get(ctx context.Context, userID string) (*models.Cart, error)
	// Save upserts the whole cart aggregate.
	Save(ctx context.Context, cart *models.Cart) error
	// Delete removes the cart. Deleting an absent cart is not an error.
	Delete(ctx context.Context, userID string) error
}
