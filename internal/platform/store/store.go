// Package store provides the storage seam the rest of the service codes
// against, backed by a bounded Postgres connection pool
package store

import (
	"context"
	"errors"
	"fmt"

	"segmenter/internal/platform/logger"
	"segmenter/internal/platform/store/pg"
)

// Store is the facade over the storage backend
type Store struct {
	Log logger.Logger

	// DB is the pooled sql seam
	DB ConnRunner
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// Conn is one exclusively-held pooled connection. It can run individual
// statements or a transaction; ownership returns to the pool when the
// surrounding WithConn call ends
type Conn interface {
	RowQuerier

	// Tx runs fn inside a transaction on this connection, committing on
	// nil and rolling back on error. Rollback failures are logged and
	// swallowed so the connection is always handed back usable
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// ConnRunner scopes one acquire/use/release cycle against the pool.
// Acquire blocks up to the configured timeout; saturation surfaces as a
// PoolExhausted error, never a hang and never an extra connection
type ConnRunner interface {
	WithConn(ctx context.Context, fn func(c Conn) error) error
}

// Binder binds a repository implementation to a query surface
type Binder[T any] interface {
	Bind(q RowQuerier) T
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Config selects and configures the backend
type Config struct {
	PG pg.Config
}

// Option mutates the Store during Open
type Option func(*Store) error

// WithLogger attaches a logger used by the adapter
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error {
		s.Log = l
		return nil
	}
}

// Open constructs a Store with a live pool, or fails
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	client, err := pg.Open(ctx, cfg.PG, nil)
	if err != nil {
		return nil, fmt.Errorf("pg open: %w", err)
	}
	s.DB = newPGAdapter(client, s.Log)
	return s, nil
}

// Guard verifies the backend answers before traffic is served
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := any(s.DB).(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
	}
	return nil
}

// Close closes the backend gracefully
func (s *Store) Close(ctx context.Context) error {
	if c, ok := s.DB.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
