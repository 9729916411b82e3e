package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/tokens"
)

const claimsKey = "claims"

type AuthMW struct {
	Secret []byte
}

func NewAuthMW(secret []byte) *AuthMW {
	return &AuthMW{Secret: secret}
}

// RequireAuth verifies the bearer token and stashes its claims in the echo
// context for downstream handlers.
func (m *AuthMW) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errs.Authf("Authorization header required")
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return errs.Authf("Invalid authorization header")
		}

		claims, err := tokens.Parse(raw, m.Secret)
		if err != nil {
			return errs.Authf("Invalid or expired token")
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// RequireCapability gates a route on the verified caller's capability.
// Must run after RequireAuth.
func (m *AuthMW) RequireCapability(cap tokens.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return errs.Authf("Authorization header required")
			}
			if !claims.Role.Can(cap) {
				return errs.Forbiddenf("Admin access required")
			}
			return next(c)
		}
	}
}

func ClaimsFrom(c echo.Context) (*tokens.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*tokens.Claims)
	return claims, ok
}
