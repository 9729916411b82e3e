package service

import (
	"context"
	"errors"
	"time"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/hash"
	"github.com/minishop/minishop/pkg/tokens"
	"github.com/minishop/minishop/services/user/internal/models"
	"github.com/minishop/minishop/services/user/internal/store"
)

type UserService struct {
	Store  store.Store
	Secret []byte
}

func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, errs.Validationf("email, password and name are required")
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.Store.Create(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         tokens.RoleUser,
		Name:         name,
	})
}

// Login reports the same failure for an unknown email and a wrong password
// so responses cannot be used to enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, errs.Validationf("email and password are required")
	}

	user, err := s.Store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", nil, errs.Authf("Invalid credentials")
		}
		return "", nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", nil, errs.Authf("Invalid credentials")
	}

	token, err := tokens.Sign(tokens.NewClaims(user.ID, user.Email, user.Role, time.Now().UTC()), s.Secret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me resolves verified claims back to the current user record.
func (s *UserService) Me(ctx context.Context, claims *tokens.Claims) (*models.User, error) {
	id, err := claims.UserID()
	if err != nil {
		return nil, errs.Authf("Invalid token")
	}
	return s.Store.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Store.List(ctx)
}
