package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/events"
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/services/user/internal/middleware"
	"github.com/minishop/minishop/services/user/internal/service"
	"github.com/minishop/minishop/services/user/internal/transport"
)

type UserHTTP struct {
	Svc      *service.UserService
	Producer *events.Producer
}

func (h *UserHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.Publish(ctx, events.TopicUser, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", events.TopicUser, "error", err)
	}
}

func (h *UserHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errs.Validationf("invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	h.publish(c, user.Email, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})
	l.Info("register_success", "id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errs.Validationf("invalid body")
	}

	token, user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	l.Info("login_success", "id", user.ID)
	return c.JSON(http.StatusOK, transport.LoginResponse{Token: token, User: *user})
}

func (h *UserHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.me")

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return errs.Authf("Authorization header required")
	}

	user, err := h.Svc.Me(ctx, claims)
	if err != nil {
		return err
	}

	l.Info("me_success", "id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.list")

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return err
	}

	l.Info("list_users_success", "count", len(users))
	return c.JSON(http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}
