package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/wambiru/forge/internal/cli"
	apphttp "github.com/wambiru/forge/internal/http"
	"github.com/wambiru/forge/internal/log"
	"github.com/wambiru/forge/internal/report"
	"github.com/wambiru/forge/internal/sink"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentApp)

	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	ledger := cli.InitLedger(ctx, logger, cfg.SQLiteDBPath)
	defer ledger.Close()

	sinkResult, err := sink.NewFactory(logger.Logger).Create(ctx, sink.Config{
		Type:          sink.Type(cfg.ReportSink),
		ReportDir:     cfg.ReportDir,
		AMQPURL:       cfg.AMQPURL,
		AMQPExchange:  cfg.AMQPExchange,
		AMQPQueue:     cfg.AMQPQueue,
		DriveFolderID: cfg.DriveFolderID,
	})
	if err != nil {
		logger.Error("Failed to initialize report sink", log.FieldError, err, log.FieldSink, cfg.ReportSink)
		os.Exit(1)
	}
	if sinkResult.Cleanup != nil {
		defer sinkResult.Cleanup()
	}

	generator := report.NewGenerator(ledger)
	srv := apphttp.NewServer(ledger, generator, sinkResult.Sink, logger).HTTPServer(":" + cfg.Port)

	shutdownCtx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(stopCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
	})

	logger.Info("Starting forge server",
		"port", cfg.Port,
		log.FieldSink, cfg.ReportSink,
		"db_path", cfg.SQLiteDBPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(shutdownCtx, done)
	logger.Info("Server stopped gracefully")
}
