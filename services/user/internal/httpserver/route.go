package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/health"
	"github.com/minishop/minishop/pkg/tokens"
	"github.com/minishop/minishop/services/user/internal/middleware"
)

type Deps struct {
	UserHandler *UserHTTP
	Auth        *middleware.AuthMW
}

func Register(e *echo.Echo, d *Deps) {
	health.Register(e, "user-service", "User Service")

	users := e.Group("/users")

	users.POST("/register", d.UserHandler.Register)
	users.POST("/login", d.UserHandler.Login)
	users.GET("/me", d.UserHandler.Me, d.Auth.RequireAuth)
	users.GET("", d.UserHandler.ListUsers, d.Auth.RequireAuth, d.Auth.RequireCapability(tokens.CapListUsers))
}
