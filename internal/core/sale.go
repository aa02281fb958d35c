package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Mpesa  TransactionType = "Mpesa"
	Cash   TransactionType = "Cash"
	Cheque TransactionType = "Cheque"
)

type (
	// TransactionType is the payment method used for a sale.
	TransactionType string

	// Sale is one transaction entry in the ledger. ID is zero until the
	// store assigns it; once assigned it never changes. A persisted Sale
	// is immutable: the ledger exposes no update or delete operation.
	Sale struct {
		ID              int64
		Client          string
		Quantity        int64
		Paid            float64
		Unpaid          float64
		TransactionType TransactionType
		Location        string
		Date            time.Time
	}
)

var (
	ErrEmptyClient            = errors.New("empty client")
	ErrEmptyLocation          = errors.New("empty location")
	ErrNegativeQuantity       = errors.New("negative quantity")
	ErrNegativeAmount         = errors.New("negative amount")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroDate               = errors.New("date cannot be zero")
)

// Total is the derived sum of paid and unpaid amounts. It is computed
// on every call and never persisted, so stored and derived values
// cannot drift.
func (s Sale) Total() float64 {
	return s.Paid + s.Unpaid
}

// Persisted reports whether the store has assigned this sale an id.
func (s Sale) Persisted() bool {
	return s.ID != 0
}

func (t TransactionType) IsValid() bool {
	switch t {
	case Mpesa, Cash, Cheque:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// TransactionTypes returns the fixed set of accepted payment methods.
func TransactionTypes() []TransactionType {
	return []TransactionType{Mpesa, Cash, Cheque}
}

// Validate checks the field-level invariants the store requires before
// persisting a sale: non-empty trimmed client and location, non-negative
// quantity and amounts, a known transaction type, and a non-zero date.
func (s Sale) Validate() error {
	if strings.TrimSpace(s.Client) == "" {
		return ErrEmptyClient
	}
	if s.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if s.Paid < 0 || s.Unpaid < 0 {
		return ErrNegativeAmount
	}
	if !s.TransactionType.IsValid() {
		return ErrInvalidTransactionType
	}
	if strings.TrimSpace(s.Location) == "" {
		return ErrEmptyLocation
	}
	if s.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// NormalizeDate converts a sale date to the canonical stored form:
// UTC, second precision. Stored RFC3339 text of normalized dates sorts
// lexicographically in chronological order.
func NormalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// EndOfDay returns the last second (23:59:59) of t's calendar day, so a
// same-day range is inclusive of the entire day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
