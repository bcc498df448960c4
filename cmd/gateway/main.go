package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/application"
	"github.com/DanielPopoola/webpay-gateway/internal/application/services"
	"github.com/DanielPopoola/webpay-gateway/internal/config"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/lock"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/persistence/boltstore"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/reference"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/webpay"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"store", cfg.Store.Driver,
		"webpay_production", cfg.Webpay.IsProduction(),
	)

	ctx := context.Background()

	store, locker, closer, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open transaction store", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	codec, err := reference.NewCodec(cfg.Security.ReferenceSecret)
	if err != nil {
		logger.Error("failed to build reference codec", "error", err)
		os.Exit(1)
	}

	webpayClient := webpay.NewClient(&cfg.Webpay)
	gateway := webpay.NewRetryClient(webpayClient, cfg.Retry, logger)

	service := services.NewTransactionService(
		store,
		gateway,
		codec,
		locker,
		services.SettingsFromConfig(cfg),
		logger,
	)

	handler, err := router.New(router.Dependencies{
		Coordinator: service,
		Server:      cfg.Server,
		APIKey:      cfg.Security.APIKey,
		FailureURL:  cfg.Callback.FailureURL,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "base_path", cfg.Server.BasePath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStore selects the settlement store and the matching per-order lock.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (application.TransactionStore, application.OrderLocker, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverBolt:
		store, err := boltstore.New(cfg.Store.BoltPath)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("using bolt store", "path", cfg.Store.BoltPath)
		return store, lock.NewKeyedLocker(), store, nil

	default:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		closer := closerFunc(func() error {
			db.Close()
			return nil
		})
		return postgres.NewTransactionRepository(db), postgres.NewAdvisoryLocker(db), closer, nil
	}
}
