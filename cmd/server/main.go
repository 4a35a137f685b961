package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/app"
	"github.com/nguyentantai21042004/meeting-report/internal/config"
	"github.com/nguyentantai21042004/meeting-report/internal/httpapi"
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml configuration")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Report Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Transcriber: %s (model %s)", cfg.Transcriber.Backend, cfg.Transcriber.ModelSize)
	log.Info(ctx, "Extractor: %s (%d api keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	a, err := app.Build(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.RunSweeper(ctx)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpapi.New(a.Pipeline, a.Store, log, cfg.Server.MaxUploadMB<<20),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Forced shutdown: %v", err)
	}

	log.Info(shutdownCtx, "Meeting Report Service stopped")
}
