// Package cli provides common initialization shared by the forge
// binaries (server, report CLI, worker).
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wambiru/forge/internal/config"
	"github.com/wambiru/forge/internal/log"
	"github.com/wambiru/forge/internal/storage"
)

// SetupLogger initializes structured logging with default settings and
// installs it as the process default.
func SetupLogger(component string) *log.Logger {
	logger := log.New(component, slog.LevelInfo)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitLedger creates and initializes the ledger store at dbPath.
// Storage failures are fatal: the process exits.
func InitLedger(ctx context.Context, logger *log.Logger, dbPath string) *storage.Ledger {
	ledger := storage.NewLedger(dbPath)
	if err := ledger.Initialize(ctx); err != nil {
		logger.Error("Failed to initialize ledger store", log.FieldError, err, "path", dbPath)
		os.Exit(1)
	}
	return ledger
}

// GracefulShutdown sets up signal handling. The returned context is
// cancelled on SIGINT/SIGTERM after cleanup runs; done closes when
// shutdown finished.
func GracefulShutdown(logger *log.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled and shutdown
// has finished.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
