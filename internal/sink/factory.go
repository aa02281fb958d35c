package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wambiru/forge/internal/report"
)

// Config holds configuration for sink creation.
type Config struct {
	Type Type

	// File sink
	ReportDir string

	// AMQP sink
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Drive sink
	DriveFolderID string
}

// Validate validates the sink configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid sink type: %s", c.Type)
	}
	if c.Type == AMQPType && c.AMQPURL == "" {
		return fmt.Errorf("AMQP URL is required for the amqp sink")
	}
	return nil
}

// CleanupFunc releases resources a sink holds.
type CleanupFunc func() error

// Result contains the sink instance and optional cleanup function.
type Result struct {
	Sink    report.DeliverySink
	Cleanup CleanupFunc
}

// Factory creates delivery sinks based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the configured sink.
func (f *Factory) Create(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case FileType:
		s := NewFileSink(cfg.ReportDir)
		f.logger.Info("Initialized file sink", "dir", cfg.ReportDir)
		return &Result{Sink: s}, nil

	case AMQPType:
		s, err := NewAMQPSink(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return nil, fmt.Errorf("initialize amqp sink: %w", err)
		}
		f.logger.Info("Initialized amqp sink",
			"exchange", cfg.AMQPExchange,
			"queue", cfg.AMQPQueue)
		return &Result{Sink: s, Cleanup: s.Close}, nil

	case DriveType:
		s, err := NewDriveSinkFromEnv(ctx, cfg.DriveFolderID)
		if err != nil {
			return nil, fmt.Errorf("initialize drive sink: %w", err)
		}
		f.logger.Info("Initialized drive sink", "folder_id", cfg.DriveFolderID)
		return &Result{Sink: s}, nil

	default:
		return nil, fmt.Errorf("unsupported sink type: %s", cfg.Type)
	}
}
