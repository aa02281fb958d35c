// forge-worker is the receiving end of the AMQP share sink: it
// consumes published report documents and spools them to disk.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/wambiru/forge/internal/cli"
	"github.com/wambiru/forge/internal/log"
	"github.com/wambiru/forge/internal/sink"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)

	logger.Info("Starting forge-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	if err := os.MkdirAll(cfg.SpoolDir, 0755); err != nil {
		logger.Error("Failed to create spool directory", log.FieldError, err, "dir", cfg.SpoolDir)
		os.Exit(1)
	}

	queue, err := sink.NewAMQPSink(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", log.FieldError, err)
		os.Exit(1)
	}
	defer queue.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return queue.Consume(ctx, func(msg *sink.ReportMessage) error {
			path := filepath.Join(cfg.SpoolDir, msg.Filename)
			if err := os.WriteFile(path, msg.Content, 0644); err != nil {
				return fmt.Errorf("spool report %s: %w", msg.Filename, err)
			}
			logger.Info("Report spooled", log.FieldReportFile, path)
			return nil
		})
	})

	logger.Info("Worker consuming report messages",
		"queue", cfg.AMQPQueue,
		"spool_dir", cfg.SpoolDir)

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
