package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/minishop/minishop/gateway/internal/config"
	"github.com/minishop/minishop/gateway/internal/httpserver"
	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/pkg/metrics"
	loggingmw "github.com/minishop/minishop/pkg/middleware/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", "api-gateway")
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.HTTPErrorHandler = errs.HTTPErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		Products: httpserver.NewBackend("Product", cfg.ProductServiceURL),
		Orders:   httpserver.NewBackend("Order", cfg.OrderServiceURL),
	})

	go func() {
		logger.Info("starting api gateway",
			"port", cfg.Port,
			"products", cfg.ProductServiceURL,
			"orders", cfg.OrderServiceURL,
		)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down api gateway")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	logger.Info("api gateway stopped")
}
