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
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/minishop/minishop/pkg/db"
	"github.com/minishop/minishop/pkg/errs"
	"github.com/minishop/minishop/pkg/events"
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/pkg/metrics"
	loggingmw "github.com/minishop/minishop/pkg/middleware/logging"
	"github.com/minishop/minishop/services/user/internal/config"
	"github.com/minishop/minishop/services/user/internal/httpserver"
	"github.com/minishop/minishop/services/user/internal/middleware"
	"github.com/minishop/minishop/services/user/internal/service"
	"github.com/minishop/minishop/services/user/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", "user-service")
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.HTTPErrorHandler = errs.HTTPErrorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(metrics.Middleware())
	e.Use(loggingmw.RequestLogger(logger))

	var users store.Store = store.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		gdb, err := db.Open(initCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		users, err = store.NewGormStore(gdb)
		if err != nil {
			log.Fatalf("user store migration error: %v", err)
		}
		logger.Info("using database-backed user store")
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	httpserver.Register(e, &httpserver.Deps{
		UserHandler: &httpserver.UserHTTP{
			Svc:      &service.UserService{Store: users, Secret: cfg.JWTSecret},
			Producer: producer,
		},
		Auth: middleware.NewAuthMW(cfg.JWTSecret),
	})

	go func() {
		logger.Info("starting user service", "port", cfg.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down user service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
	if err := producer.Close(); err != nil {
		logger.Error("producer close", "error", err)
	}

	logger.Info("user service stopped")
}
