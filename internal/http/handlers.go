package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wambiru/forge/internal/core"
	"github.com/wambiru/forge/internal/log"
	"github.com/wambiru/forge/internal/storage"
)

// saleResponse is the wire form of a persisted sale, total included.
type saleResponse struct {
	ID              int64   `json:"id"`
	Client          string  `json:"client"`
	Quantity        int64   `json:"quantity"`
	Paid            float64 `json:"paid"`
	Unpaid          float64 `json:"unpaid"`
	Total           float64 `json:"total"`
	TransactionType string  `json:"transaction_type"`
	Location        string  `json:"location"`
	Date            string  `json:"date"`
}

func toSaleResponse(s core.Sale) saleResponse {
	return saleResponse{
		ID:              s.ID,
		Client:          s.Client,
		Quantity:        s.Quantity,
		Paid:            s.Paid,
		Unpaid:          s.Unpaid,
		Total:           s.Total(),
		TransactionType: s.TransactionType.String(),
		Location:        s.Location,
		Date:            s.Date.UTC().Format(time.RFC3339),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).String(),
	})
}

func (s *Server) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := req.toSale(time.Now)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.Create(r.Context(), sale)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to create sale",
			log.FieldError, err,
			log.FieldClient, sale.Client)
		writeError(w, storeErrorStatus(err), err.Error())
		return
	}

	s.summaries.Clear()
	writeJSON(w, http.StatusCreated, toSaleResponse(created))
}

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, err := s.store.ReadAll(r.Context(), from, to)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to list sales", log.FieldError, err)
		writeError(w, storeErrorStatus(err), err.Error())
		return
	}

	resp := make([]saleResponse, len(sales))
	for i, sale := range sales {
		resp[i] = toSaleResponse(sale)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sales": resp,
		"count": len(resp),
	})
}

// summaryResponse is the wire form of an aggregated date range. It is
// also the cached unit: summaries are recomputed on write, not per read.
type summaryResponse struct {
	Paid   float64 `json:"paid"`
	Unpaid float64 `json:"unpaid"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}

func summaryCacheKey(from, to time.Time) string {
	return from.UTC().Format(time.RFC3339) + "/" + to.UTC().Format(time.RFC3339)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := summaryCacheKey(from, to)
	if cached, ok := s.summaries.Get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	sales, err := s.store.ReadAll(r.Context(), from, to)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to summarize sales", log.FieldError, err)
		writeError(w, storeErrorStatus(err), err.Error())
		return
	}

	sum := core.Summarize(sales)
	resp := summaryResponse{
		Paid:   sum.Paid,
		Unpaid: sum.Unpaid,
		Total:  sum.Total,
		Count:  len(sales),
	}
	s.summaries.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// reportRequest carries the optional date range of a report export.
type reportRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	var from, to time.Time
	if req.From != "" && req.To != "" {
		var err error
		if from, err = parseDate(req.From); err != nil {
			writeError(w, http.StatusBadRequest, "invalid from: "+err.Error())
			return
		}
		if to, err = parseDate(req.To); err != nil {
			writeError(w, http.StatusBadRequest, "invalid to: "+err.Error())
			return
		}
		if len(req.To) == len("2006-01-02") {
			to = core.EndOfDay(to)
		}
	}

	doc, err := s.generator.GenerateAndDeliver(r.Context(), from, to, s.sink)
	if err != nil {
		if doc.Filename != "" {
			// Rendering succeeded; only delivery failed. The document
			// is still valid for a retry.
			s.logger.ErrorContext(r.Context(), "Report delivery failed",
				log.FieldError, err,
				log.FieldReportFile, doc.Filename)
			writeJSON(w, http.StatusBadGateway, map[string]any{
				"error":    err.Error(),
				"filename": doc.Filename,
			})
			return
		}
		s.logger.ErrorContext(r.Context(), "Report generation failed", log.FieldError, err)
		writeError(w, storeErrorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"filename":     doc.Filename,
		"generated_at": doc.GeneratedAt.UTC().Format(time.RFC3339),
		"size_bytes":   len(doc.Content),
	})
}

// storeErrorStatus maps ledger failures to response codes: validation
// errors are the caller's fault, lifecycle violations and storage
// failures are ours.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrEmptyClient),
		errors.Is(err, core.ErrEmptyLocation),
		errors.Is(err, core.ErrNegativeQuantity),
		errors.Is(err, core.ErrNegativeAmount),
		errors.Is(err, core.ErrInvalidTransactionType),
		errors.Is(err, core.ErrZeroDate):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotInitialized),
		errors.Is(err, storage.ErrStoreClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
