// Package database provides lazy access to the postgres handle shared by all
// repositories. The handle is established once per process and reused; a
// failed attempt is cleared so a later request can retry.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

// ErrConnectionFailure wraps any error from establishing the database
// connection so callers can classify it without inspecting driver errors.
var ErrConnectionFailure = errors.New("database connection failure")

// Provider yields the shared database handle, establishing it on first use.
// Repositories depend on this interface so tests can supply a fixed handle.
type Provider interface {
	DB(ctx context.Context) (*sql.DB, error)
}

// ConnectFunc establishes a database connection. Open returns the production
// implementation; tests inject their own.
type ConnectFunc func(ctx context.Context) (*sql.DB, error)

// Open returns a ConnectFunc that opens a postgres pool for the given DSN and
// verifies it with a ping.
func Open(dsn string) ConnectFunc {
	return func(ctx context.Context) (*sql.DB, error) {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}
}

// attempt is one connection-establishment attempt. done is closed when the
// outcome (db or err) is final.
type attempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

// Manager caches a single database handle for the lifetime of the process.
// The first caller triggers the connection attempt; concurrent callers wait on
// that same attempt instead of starting another. On failure every waiter
// receives the error and the attempt is discarded, so the next call retries.
// There is no teardown; the handle lives as long as the process.
type Manager struct {
	connect ConnectFunc

	mu      sync.Mutex
	db      *sql.DB
	pending *attempt
}

// NewManager returns a Manager that establishes connections with connect.
// Construct it once in main and share it by reference.
func NewManager(connect ConnectFunc) *Manager {
	return &Manager{connect: connect}
}

// DB returns the cached handle, or establishes it if no attempt has succeeded
// yet. At most one establishment attempt is in flight at any time. Waiting
// callers honor ctx cancellation without aborting the shared attempt.
func (m *Manager) DB(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	if m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}
	if m.pending != nil {
		a := m.pending
		m.mu.Unlock()
		return m.wait(ctx, a)
	}

	a := &attempt{done: make(chan struct{})}
	m.pending = a
	m.mu.Unlock()

	a.db, a.err = m.connect(context.WithoutCancel(ctx))
	if a.err != nil {
		a.err = fmt.Errorf("%w: %v", ErrConnectionFailure, a.err)
	}

	m.mu.Lock()
	if a.err == nil {
		m.db = a.db
	}
	m.pending = nil
	m.mu.Unlock()

	close(a.done)
	return a.db, a.err
}

func (m *Manager) wait(ctx context.Context, a *attempt) (*sql.DB, error) {
	select {
	case <-a.done:
		return a.db, a.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// static is a Provider that always yields the same handle. Used in tests.
type static struct {
	db *sql.DB
}

// Static wraps an already-open handle in a Provider. Intended for tests that
// drive repositories with sqlmock.
func Static(db *sql.DB) Provider {
	return &static{db: db}
}

func (s *static) DB(ctx context.Context) (*sql.DB, error) {
	return s.db, nil
}
