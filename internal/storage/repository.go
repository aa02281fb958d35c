// Package storage implements the durable ledger store: a single-table
// SQLite database holding immutable sale records, with creation and
// range-filtered retrieval.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/wambiru/forge/internal/core"

	_ "modernc.org/sqlite"
)

// saleDateLayout is the stored timestamp format. Dates are normalized
// to UTC before encoding so the text sorts in chronological order.
const saleDateLayout = "2006-01-02T15:04:05Z07:00"

var (
	// ErrNotInitialized is returned when a store operation runs before
	// Initialize has completed.
	ErrNotInitialized = errors.New("ledger store not initialized")

	// ErrStoreClosed is returned when a store operation runs after Close.
	// A closed store never silently reopens.
	ErrStoreClosed = errors.New("ledger store closed")
)

// MalformedRecordError reports a stored row whose field could not be
// decoded, localized to the offending record.
type MalformedRecordError struct {
	ID    int64
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed sale record %d: field %s: %v", e.ID, e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// SQLiteRepository owns the SQLite handle behind the ledger.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dbPath,
// verifies the connection and runs schema migrations.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateSale validates and persists a sale, returning a copy carrying
// the assigned id and the normalized date. Any id on the input is
// ignored; the store is the sole id authority.
func (r *SQLiteRepository) CreateSale(ctx context.Context, s core.Sale) (core.Sale, error) {
	if err := s.Validate(); err != nil {
		return core.Sale{}, fmt.Errorf("validate sale: %w", err)
	}

	s.Date = core.NormalizeDate(s.Date)

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sales (client, quantity, paid, unpaid, transaction_type, location, sale_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Client, s.Quantity, s.Paid, s.Unpaid, string(s.TransactionType), s.Location,
		s.Date.Format(saleDateLayout))
	if err != nil {
		return core.Sale{}, fmt.Errorf("insert sale: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Sale{}, fmt.Errorf("read assigned id: %w", err)
	}
	s.ID = id

	slog.InfoContext(ctx, "Sale saved",
		"id", s.ID,
		"client", s.Client,
		"paid", s.Paid,
		"unpaid", s.Unpaid,
		"transaction_type", s.TransactionType)

	return s, nil
}

// ListSales returns persisted sales ordered by date descending, ties
// broken by id descending (latest insert first). A zero from or to
// bound disables filtering; otherwise the range [from, to] is inclusive.
func (r *SQLiteRepository) ListSales(ctx context.Context, from, to time.Time) ([]core.Sale, error) {
	const base = `SELECT id, client, quantity, paid, unpaid, transaction_type, location, sale_date
		 FROM sales`
	const order = ` ORDER BY sale_date DESC, id DESC`

	var (
		rows *sql.Rows
		err  error
	)
	if from.IsZero() || to.IsZero() {
		rows, err = r.db.QueryContext(ctx, base+order)
	} else {
		rows, err = r.db.QueryContext(ctx, base+` WHERE sale_date >= ? AND sale_date <= ?`+order,
			core.NormalizeDate(from).Format(saleDateLayout),
			core.NormalizeDate(to).Format(saleDateLayout))
	}
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	var sales []core.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}

	return sales, nil
}

// CountSales returns the number of persisted sales.
func (r *SQLiteRepository) CountSales(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

func scanSale(rows *sql.Rows) (core.Sale, error) {
	var (
		s        core.Sale
		txType   string
		saleDate string
	)
	if err := rows.Scan(&s.ID, &s.Client, &s.Quantity, &s.Paid, &s.Unpaid, &txType, &s.Location, &saleDate); err != nil {
		return core.Sale{}, fmt.Errorf("scan sale row: %w", err)
	}

	date, err := time.Parse(saleDateLayout, saleDate)
	if err != nil {
		return core.Sale{}, &MalformedRecordError{ID: s.ID, Field: "sale_date", Err: err}
	}
	s.Date = date.UTC()

	s.TransactionType = core.TransactionType(txType)
	if !s.TransactionType.IsValid() {
		return core.Sale{}, &MalformedRecordError{
			ID:    s.ID,
			Field: "transaction_type",
			Err:   fmt.Errorf("unknown value %q", txType),
		}
	}

	return s, nil
}
