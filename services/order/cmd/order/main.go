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

	"github.com/minishop/minishop/pkg/db"
	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/events"
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/pkg/metrics"
	loggingmw "github.com/minishop/minishop/pkg/middleware/logging"
	"github.com/minishop/minishop/services/order/internal/config"
	"github.com/minishop/minishop/services/order/internal/httpserver"
	"github.com/minishop/minishop/services/order/internal/service"
	"github.com/minishop/minishop/services/order/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", "order-service")
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

	seed := store.Seed()

	var orders store.Store = store.NewMemoryStore(seed)
	if cfg.DatabaseURL != "" {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		gdb, err := db.Open(initCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		orders, err = store.NewGormStore(gdb, seed)
		if err != nil {
			log.Fatalf("order store migration error: %v", err)
		}
		logger.Info("using database-backed order store")
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	httpserver.Register(e, &httpserver.Deps{
		OrderHandler: &httpserver.OrderHTTP{
			Svc:      &service.OrderService{Store: orders},
			Producer: producer,
		},
	})

	go func() {
		logger.Info("starting order service", "port", cfg.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down order service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("producer close", "error", err)
	}

	logger.Info("order service stopped")
}
