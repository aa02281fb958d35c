package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wambiru/forge/internal/core"
)

type ledgerState int

const (
	stateUninitialized ledgerState = iota
	stateReady
	stateClosed
)

// Ledger is the lifecycle gate in front of the SQLite repository. It
// owns the single live storage handle for the process: Initialize opens
// the handle exactly once (concurrent first callers serialize on the
// mutex and share the memoized handle), Create and ReadAll are valid
// only while the ledger is ready, and Close is terminal.
type Ledger struct {
	path string

	mu    sync.Mutex
	state ledgerState
	repo  *SQLiteRepository
}

// NewLedger returns an uninitialized ledger for the database at path.
// Initialize must complete before any other operation.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Initialize opens the underlying storage and creates the schema if
// absent. Calling it again while ready is a no-op on the same live
// handle. A closed ledger is never reopened.
func (l *Ledger) Initialize(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case stateReady:
		return nil
	case stateClosed:
		return ErrStoreClosed
	}

	repo, err := NewSQLiteRepository(l.path)
	if err != nil {
		return err
	}

	l.repo = repo
	l.state = stateReady
	slog.InfoContext(ctx, "Ledger store initialized", "path", l.path)
	return nil
}

// handle returns the live repository, failing loudly outside the Ready
// state. Callers racing an in-flight Initialize block here until it
// completes.
func (l *Ledger) handle() (*SQLiteRepository, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case stateUninitialized:
		return nil, ErrNotInitialized
	case stateClosed:
		return nil, ErrStoreClosed
	}
	return l.repo, nil
}

// Create persists a sale and returns it with the assigned id.
func (l *Ledger) Create(ctx context.Context, s core.Sale) (core.Sale, error) {
	repo, err := l.handle()
	if err != nil {
		return core.Sale{}, err
	}
	return repo.CreateSale(ctx, s)
}

// ReadAll returns persisted sales ordered newest first. With both
// bounds set, only sales dated within the inclusive range [from, to]
// are returned; a zero bound disables filtering.
func (l *Ledger) ReadAll(ctx context.Context, from, to time.Time) ([]core.Sale, error) {
	repo, err := l.handle()
	if err != nil {
		return nil, err
	}
	return repo.ListSales(ctx, from, to)
}

// Count returns the number of persisted sales.
func (l *Ledger) Count(ctx context.Context) (int64, error) {
	repo, err := l.handle()
	if err != nil {
		return 0, err
	}
	return repo.CountSales(ctx)
}

// Close releases the storage handle. Further operations fail with
// ErrStoreClosed.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == stateClosed {
		return nil
	}

	var err error
	if l.repo != nil {
		err = l.repo.Close()
		l.repo = nil
	}
	l.state = stateClosed
	return err
}
