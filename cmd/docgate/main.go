package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docgate/internal/config"
	esstore "github.com/kailas-cloud/docgate/internal/db/elasticsearch"
	logpkg "github.com/kailas-cloud/docgate/internal/logger"
	"github.com/kailas-cloud/docgate/internal/metrics"
	documentrepo "github.com/kailas-cloud/docgate/internal/repository/document"
	indexrepo "github.com/kailas-cloud/docgate/internal/repository/index"
	chiTransport "github.com/kailas-cloud/docgate/internal/transport/chi"
	documentuc "github.com/kailas-cloud/docgate/internal/usecase/document"
	healthuc "github.com/kailas-cloud/docgate/internal/usecase/health"
	indexuc "github.com/kailas-cloud/docgate/internal/usecase/index"
	"github.com/kailas-cloud/docgate/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	var fileSink *logpkg.FileSink
	if cfg.Logging.File != "" {
		fileSink = &logpkg.FileSink{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		}
	}
	logger, err := logpkg.NewLogger(env, cfg.Logging.Level, fileSink)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting docgate API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("store_host", cfg.Store.Host),
		zap.Int("store_port", cfg.Store.Port),
	)

	// Register store metrics explicitly (no init())
	metrics.RegisterStoreMetrics()

	store, err := esstore.NewStore(esstore.Config{
		Host:           cfg.Store.Host,
		Port:           cfg.Store.Port,
		Scheme:         cfg.Store.Scheme,
		Username:       cfg.Store.Username,
		Password:       cfg.Store.Password,
		MaxRetries:     cfg.Store.MaxRetries,
		RetryOnTimeout: cfg.Store.RetryOnTimeout,
		Refresh:        cfg.Store.Refresh,
		Logger:         logger,
	})
	if err != nil {
		logger.Fatal("Failed to create Elasticsearch store", zap.Error(err))
	}

	awaitStore(context.Background(), store, time.Duration(cfg.Store.ReadinessTimeout)*time.Second, logger)

	// Repositories
	indexRepo := indexrepo.New(store)
	docRepo := documentrepo.New(store)

	// Use case services
	healthSvc := healthuc.New(store)
	indexSvc := indexuc.New(indexRepo)
	docSvc := documentuc.New(docRepo, indexRepo)

	server := chiTransport.NewServer(healthSvc, indexSvc, docSvc, logger)
	handler := chiTransport.NewRouter(server, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-quit:
		logger.Info("Received shutdown signal")
	case err := <-serveErr:
		logger.Error("HTTP server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warn("Error closing Elasticsearch client", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
