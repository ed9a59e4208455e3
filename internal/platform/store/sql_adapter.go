package store

import (
	"context"
	stderrs "errors"
	"time"

	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"
	"segmenter/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgAdapter wraps pg.PG and implements ConnRunner
type pgAdapter struct {
	p   *pg.PG
	log logger.Logger
}

func newPGAdapter(p *pg.PG, log logger.Logger) *pgAdapter {
	return &pgAdapter{p: p, log: log}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	return a.WithConn(ctx, func(c Conn) error {
		var one int
		return c.QueryRow(ctx, "SELECT 1").Scan(&one)
	})
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

// WithConn acquires one pooled connection, runs fn against it, and releases
// it on every exit path. The acquire blocks at most the configured timeout;
// saturation maps to PoolExhausted. The held unit of work runs detached from
// caller cancellation so a disconnect mid-flight never leaks the connection
func (a *pgAdapter) WithConn(ctx context.Context, fn func(c Conn) error) error {
	base := context.WithoutCancel(ctx)

	acquireCtx, cancel := context.WithTimeout(base, a.p.AcquireTimeout)
	conn, err := a.p.Pool.Acquire(acquireCtx)
	cancel()
	if err != nil {
		if stderrs.Is(err, context.DeadlineExceeded) {
			return perr.Wrapf(err, perr.ErrorCodePoolExhausted,
				"no connection available within %s", a.p.AcquireTimeout)
		}
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "connection acquire failed")
	}
	defer conn.Release()

	return fn(&pooledConn{c: conn, ctx: base, log: a.log})
}

// pooledConn adapts one pgxpool.Conn to the Conn seam.
// All statements run on the detached base context so the unit of work is
// driven to completion even when the caller has gone away
type pooledConn struct {
	c   *pgxpool.Conn
	ctx context.Context
	log logger.Logger
}

func (pc *pooledConn) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	ct, err := pc.c.Exec(pc.ctx, sql, args...)
	return tag{ct}, err
}

func (pc *pooledConn) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	rs, err := pc.c.Query(pc.ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (pc *pooledConn) QueryRow(_ context.Context, sql string, args ...any) Row {
	return pc.c.QueryRow(pc.ctx, sql, args...)
}

// Tx runs fn in a transaction on this connection. Commit on nil, rollback
// on error; a failed rollback is logged and swallowed so release always
// proceeds with the connection in a known state
func (pc *pooledConn) Tx(_ context.Context, fn func(q RowQuerier) error) error {
	tx, err := pc.c.Begin(pc.ctx)
	if err != nil {
		return err
	}
	if err := fn(txQuerier{tx: tx, ctx: pc.ctx}); err != nil {
		pc.rollback(tx)
		return err
	}
	if err := tx.Commit(pc.ctx); err != nil {
		pc.rollback(tx)
		return err
	}
	return nil
}

func (pc *pooledConn) rollback(tx pgx.Tx) {
	rbCtx, cancel := context.WithTimeout(pc.ctx, 5*time.Second)
	defer cancel()
	if err := tx.Rollback(rbCtx); err != nil && !stderrs.Is(err, pgx.ErrTxClosed) {
		pc.log.Error().Err(err).Msg("tx rollback failed")
	}
}

// txQuerier satisfies RowQuerier inside a transaction
type txQuerier struct {
	tx  pgx.Tx
	ctx context.Context
}

func (t txQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	ct, err := t.tx.Exec(t.ctx, sql, args...)
	return tag{ct}, err
}

func (t txQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	rs, err := t.tx.Query(t.ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (t txQuerier) QueryRow(_ context.Context, sql string, args ...any) Row {
	return t.tx.QueryRow(t.ctx, sql, args...)
}

// adapters for pgx to our tiny Row/Rows/CommandTag

type rows struct{ r pgx.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { x.r.Close() }

type tag struct{ t pgconn.CommandTag }

func (t tag) String() string      { return t.t.String() }
func (t tag) RowsAffected() int64 { return t.t.RowsAffected() }
