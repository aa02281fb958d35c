// Package http exposes the ledger over a small JSON API: record a
// sale, list and summarize sales by date range, and export a report
// through the configured delivery sink. It is the stand-in for the
// interactive form UI, which holds no state of its own.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/wambiru/forge/internal/cache"
	"github.com/wambiru/forge/internal/core"
	"github.com/wambiru/forge/internal/log"
	"github.com/wambiru/forge/internal/report"
)

const (
	summaryCacheSize = 64
	summaryCacheTTL  = 30 * time.Second
)

// SaleStore is the slice of the ledger the API needs.
type SaleStore interface {
	Create(ctx context.Context, s core.Sale) (core.Sale, error)
	ReadAll(ctx context.Context, from, to time.Time) ([]core.Sale, error)
}

// Server wires the ledger, report generator and delivery sink to the
// HTTP routes.
type Server struct {
	store     SaleStore
	generator *report.Generator
	sink      report.DeliverySink
	logger    *log.Logger
	summaries *cache.LRUCache[summaryResponse]
	started   time.Time
}

func NewServer(store SaleStore, generator *report.Generator, sink report.DeliverySink, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.ComponentHTTP, 0)
	}
	return &Server{
		store:     store,
		generator: generator,
		sink:      sink,
		logger:    logger,
		summaries: cache.NewLRUCache[summaryResponse](summaryCacheSize, summaryCacheTTL),
		started:   time.Now(),
	}
}

// Handler returns the routed and middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/sales", s.handleCreateSale)
	mux.HandleFunc("GET /api/sales", s.handleListSales)
	mux.HandleFunc("GET /api/sales/summary", s.handleSummary)
	mux.HandleFunc("POST /api/reports", s.handleGenerateReport)

	return log.Middleware(s.logger)(mux)
}

// HTTPServer wraps the handler in an http.Server with sane timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        s.Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}
}
