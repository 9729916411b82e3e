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
	"github.com/minishop/minishop/services/cart/internal/config"
	"github.com/minishop/minishop/services/cart/internal/httpserver"
	"github.com/minishop/minishop/services/cart/internal/service"
	"github.com/minishop/minishop/services/cart/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", "cart-service")
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

	var carts store.Store = store.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		gdb, err := db.Open(initCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		carts, err = store.NewGormStore(gdb)
		if err != nil {
			log.Fatalf("cart store migration error: %v", err)
		}
		logger.Info("using database-backed cart store")
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	httpserver.Register(e, &httpserver.Deps{
		CartHandler: &httpserver.CartHTTP{
			Svc:      &service.CartService{Store: carts},
			Producer: producer,
		},
	})

	go func() {
		logger.Info("starting cart service", "port", cfg.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down cart service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("producer close", "error", err)
	}

	logger.Info("cart service stopped")
}
