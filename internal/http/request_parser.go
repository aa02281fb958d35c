// This file parses entrepreneur-supplied request data. Numeric fields
// follow the lenient form contract: unparsable or negative input
// coerces to zero instead of rejecting the request.

package http

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/wambiru/forge/internal/core"
)

// saleRequest is the wire form of a sale to record. Numeric fields are
// typed loosely so both JSON numbers and strings are accepted.
type saleRequest struct {
	Client          string `json:"client"`
	Quantity        any    `json:"quantity"`
	Paid            any    `json:"paid"`
	Unpaid          any    `json:"unpaid"`
	TransactionType string `json:"transaction_type"`
	Location        string `json:"location"`
	Date            string `json:"date"`
}

// toSale converts the request into a Sale, applying the coercion
// contract. A missing date defaults to the creation instant.
func (r saleRequest) toSale(now func() time.Time) (core.Sale, error) {
	date := now()
	if strings.TrimSpace(r.Date) != "" {
		parsed, err := parseDate(r.Date)
		if err != nil {
			return core.Sale{}, fmt.Errorf("invalid date %q", r.Date)
		}
		date = parsed
	}

	return core.Sale{
		Client:          strings.TrimSpace(r.Client),
		Quantity:        coerceQuantity(r.Quantity),
		Paid:            coerceAmount(r.Paid),
		Unpaid:          coerceAmount(r.Unpaid),
		TransactionType: core.ParseTransactionType(r.TransactionType),
		Location:        strings.TrimSpace(r.Location),
		Date:            date,
	}, nil
}

func coerceAmount(v any) float64 {
	switch x := v.(type) {
	case float64:
		if x < 0 {
			return 0
		}
		return x
	case string:
		return core.ParseAmount(x)
	default:
		return 0
	}
}

func coerceQuantity(v any) int64 {
	switch x := v.(type) {
	case float64:
		if x < 0 {
			return 0
		}
		return int64(x)
	case string:
		return core.ParseQuantity(x)
	default:
		return 0
	}
}

// dateLayouts are the accepted textual date forms, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseRange extracts an optional [from, to] pair from query values.
// A date-only "to" is widened to the end of its calendar day so a
// same-day range covers the whole day. If either bound is missing the
// range is unbounded (zero times).
func parseRange(query url.Values) (from, to time.Time, err error) {
	fromRaw := strings.TrimSpace(query.Get("from"))
	toRaw := strings.TrimSpace(query.Get("to"))
	if fromRaw == "" || toRaw == "" {
		return time.Time{}, time.Time{}, nil
	}

	from, err = parseDate(fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %w", err)
	}

	to, err = parseDate(toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %w", err)
	}
	if len(toRaw) == len("2006-01-02") {
		to = core.EndOfDay(to)
	}

	return from, to, nil
}
