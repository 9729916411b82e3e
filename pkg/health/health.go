// Package health wires the uniform service endpoints: liveness, readiness
// and the root banner every service answers with.
package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minishop/minishop/pkg/metrics"
)

const Version = "1.0.0"

// Register mounts /health, /ready, /metrics and the root banner. name is the
// wire identifier ("cart-service"), display the human one ("Cart Service").
func Register(e *echo.Echo, name, display string) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "healthy",
			"service":   name,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "ready",
			"service": name,
		})
	})

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"service": display,
			"version": Version,
		})
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
