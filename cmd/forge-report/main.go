// forge-report renders and delivers a sales report from the command
// line: an optional -from/-to date range and a sink override.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wambiru/forge/internal/cli"
	"github.com/wambiru/forge/internal/core"
	"github.com/wambiru/forge/internal/log"
	"github.com/wambiru/forge/internal/report"
	"github.com/wambiru/forge/internal/sink"
)

func main() {
	fromFlag := flag.String("from", "", "range start (YYYY-MM-DD), empty for all records")
	toFlag := flag.String("to", "", "range end (YYYY-MM-DD, inclusive of the whole day), empty for now")
	sinkFlag := flag.String("sink", "", "delivery sink override (file|amqp|drive)")
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentReport)
	cfg := cli.LoadAndValidateConfig(logger)

	if *sinkFlag != "" {
		cfg.ReportSink = *sinkFlag
	}

	var from, to time.Time
	if *fromFlag != "" {
		parsed, err := time.Parse("2006-01-02", *fromFlag)
		if err != nil {
			logger.Error("Invalid -from date", log.FieldError, err)
			os.Exit(2)
		}
		from = parsed
	}
	if *toFlag != "" {
		parsed, err := time.Parse("2006-01-02", *toFlag)
		if err != nil {
			logger.Error("Invalid -to date", log.FieldError, err)
			os.Exit(2)
		}
		to = core.EndOfDay(parsed)
	}

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

	doc, err := report.NewGenerator(ledger).GenerateAndDeliver(ctx, from, to, sinkResult.Sink)
	if err != nil {
		if doc.Filename != "" {
			// The document was rendered; only delivery failed.
			logger.Error("Report delivery failed, document kept for retry",
				log.FieldError, err,
				log.FieldReportFile, doc.Filename)
		} else {
			logger.Error("Report generation failed", log.FieldError, err)
		}
		os.Exit(1)
	}

	fmt.Println(doc.Filename)
}
