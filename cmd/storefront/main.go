package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/shopfront-labs/storefront/internal/api/http"
	"github.com/shopfront-labs/storefront/internal/backend"
	"github.com/shopfront-labs/storefront/internal/config"
	"github.com/shopfront-labs/storefront/internal/flash"
	"github.com/shopfront-labs/storefront/internal/observability"
	"github.com/shopfront-labs/storefront/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	var store flash.Store
	if cfg.Redis.Addr != "" {
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		store = flash.NewRedisStore(redis.Client, redis.Key("flash", ""))
	} else {
		logger.Info("REDIS_ADDR not set, keeping flash messages in memory")
		store = flash.NewMemoryStore()
	}

	api := backend.New(backend.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout(),
		Logger:  logger.Named("backend"),
		Metrics: metrics,
	})

	app := httptransport.NewServer(httptransport.ServerDependencies{
		Config:     cfg,
		Logger:     logger,
		Metrics:    metrics,
		API:        api,
		FlashStore: store,
	})

	go func() {
		logger.Info("storefront listening",
			zap.String("addr", cfg.App.Addr()),
			zap.String("backend", cfg.Backend.BaseURL),
		)
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
