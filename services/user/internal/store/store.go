package store

import (
	"context"

	"github.com/minishop/minishop/services/user/internal/models"
)

type Store interface {
	// Create assigns the next id and persists the user. Fails with the
	// conflict sentinel when the email is already registered.
	Create(ctx context.Context, user models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
