package http

import (
	"net/url"
	"testing"
	"time"

	"github.com/wambiru/forge/internal/core"
)

func TestParseRange(t *testing.T) {
	t.Run("both bounds date-only", func(t *testing.T) {
		q := url.Values{"from": {"2024-01-01"}, "to": {"2024-01-31"}}
		from, to, err := parseRange(q)
		if err != nil {
			t.Fatalf("parseRange: %v", err)
		}
		if !from.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("from = %v", from)
		}
		// Date-only "to" widens to 23:59:59.
		if !to.Equal(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)) {
			t.Fatalf("to = %v", to)
		}
	})

	t.Run("missing bound means unbounded", func(t *testing.T) {
		for _, q := range []url.Values{
			{},
			{"from": {"2024-01-01"}},
			{"to": {"2024-01-31"}},
		} {
			from, to, err := parseRange(q)
			if err != nil {
				t.Fatalf("parseRange(%v): %v", q, err)
			}
			if !from.IsZero() || !to.IsZero() {
				t.Fatalf("expected zero bounds for %v, got %v..%v", q, from, to)
			}
		}
	})

	t.Run("invalid bound", func(t *testing.T) {
		q := url.Values{"from": {"January 1st"}, "to": {"2024-01-31"}}
		if _, _, err := parseRange(q); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestSaleRequestToSale(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("date defaults to creation instant", func(t *testing.T) {
		s, err := saleRequest{Client: "c", TransactionType: "Cash", Location: "l"}.toSale(clock)
		if err != nil {
			t.Fatalf("toSale: %v", err)
		}
		if !s.Date.Equal(now) {
			t.Fatalf("date = %v, want %v", s.Date, now)
		}
	})

	t.Run("explicit date respected", func(t *testing.T) {
		s, err := saleRequest{Client: "c", TransactionType: "Cash", Location: "l", Date: "2024-01-15"}.toSale(clock)
		if err != nil {
			t.Fatalf("toSale: %v", err)
		}
		if !s.Date.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("date = %v", s.Date)
		}
	})

	t.Run("bad date rejected", func(t *testing.T) {
		if _, err := (saleRequest{Client: "c", Date: "soon"}).toSale(clock); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("numeric coercion", func(t *testing.T) {
		s, err := saleRequest{
			Client:          "c",
			Quantity:        float64(3),
			Paid:            "100,50",
			Unpaid:          nil,
			TransactionType: "mpesa",
			Location:        "l",
		}.toSale(clock)
		if err != nil {
			t.Fatalf("toSale: %v", err)
		}
		if s.Quantity != 3 || s.Paid != 100.5 || s.Unpaid != 0 {
			t.Fatalf("coercion wrong: %+v", s)
		}
		if s.TransactionType != core.Mpesa {
			t.Fatalf("transaction type = %q", s.TransactionType)
		}
	})
}
