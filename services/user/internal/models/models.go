package models

import (
	"github.com/minishop/minishop/pkg/tokens"
)

// User is an account record. PasswordHash stays out of every JSON response.
type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         tokens.Role `json:"role"`
	Name         string      `json:"name"`
}
