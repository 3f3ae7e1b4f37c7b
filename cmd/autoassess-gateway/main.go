package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/autoassess-client/internal/api/http"
	"github.com/spec-kit/autoassess-client/internal/config"
	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store, closeStore := newStore(cfg, logger)
	defer closeStore()

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics)

	proxy := httptransport.NewProxy(cfg.API, cfg.Auth, store, logger)
	httptransport.RegisterRoutes(app, cfg.API.Prefix, proxy)

	go func() {
		logger.Info("gateway listening",
			zap.String("addr", cfg.App.Addr()),
			zap.String("backend", cfg.API.BaseURL),
		)
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newStore(cfg *config.Config, logger *zap.Logger) (credstore.Store, func()) {
	switch cfg.Credentials.Backend {
	case "redis":
		store := credstore.NewRedisStore(cfg.Redis, cfg.App.Name, logger)
		return store, store.Close
	case "memory":
		return credstore.NewMemoryStore(), func() {}
	default:
		return credstore.NewFileStore(cfg.Credentials.File, logger), func() {}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
