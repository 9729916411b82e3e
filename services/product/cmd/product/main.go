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
	"github.com/minishop/minishop/pkg/logging"
	"github.com/minishop/minishop/pkg/metrics"
	loggingmw "github.com/minishop/minishop/pkg/middleware/logging"
	"github.com/minishop/minishop/services/product/internal/config"
	"github.com/minishop/minishop/services/product/internal/httpserver"
	"github.com/minishop/minishop/services/product/internal/search"
	"github.com/minishop/minishop/services/product/internal/service"
	"github.com/minishop/minishop/services/product/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", "product-service")
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

	var catalog store.Store = store.NewMemoryStore(seed)
	if cfg.DatabaseURL != "" {
		initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		gdb, err := db.Open(initCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		catalog, err = store.NewGormStore(gdb, seed)
		if err != nil {
			log.Fatalf("product store migration error: %v", err)
		}
		logger.Info("using database-backed product store")
	}

	var searcher *search.Client
	if cfg.ESURL != "" {
		var err error
		searcher, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			logger.Error("elasticsearch unavailable, using substring search", "error", err)
		} else {
			indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err = searcher.IndexProducts(indexCtx, seed)
			cancel()
			if err != nil {
				logger.Error("catalog indexing failed, using substring search", "error", err)
				searcher = nil
			} else {
				logger.Info("catalog indexed", "index", cfg.ESIndex, "products", len(seed))
			}
		}
	}

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{
			Svc: &service.ProductService{Store: catalog, Search: searcher},
		},
	})

	go func() {
		logger.Info("starting product service", "port", cfg.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down product service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	logger.Info("product service stopped")
}
