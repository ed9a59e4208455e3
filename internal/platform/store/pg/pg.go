// Package pg provides the Postgres client built on pgxpool
package pg

import (
	"context"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pgxpool client
type Config struct {
	URL            string
	MinConns       int32
	MaxConns       int32
	AcquireTimeout time.Duration
}

// PG is a postgres client owning the bounded connection pool
type PG struct {
	Pool           *pgxpool.Pool
	AcquireTimeout time.Duration
}

// seam for tests
var newPool = pgxpool.NewWithConfig

// Open creates a new PG client with the given config and optional pool
// config mutator. The pool is sized up-front; the process must not serve
// traffic when this fails
func Open(ctx context.Context, cfg Config, poolCfgMut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if poolCfgMut != nil {
		poolCfgMut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.AcquireTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &PG{Pool: pool, AcquireTimeout: timeout}, nil
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}

// URL assembles a postgres connection URL from discrete parts, for
// deployments that configure host/user/db separately instead of a DSN
func URL(host, port, user, pass, dbname string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, pass),
		Host:   host + ":" + port,
		Path:   "/" + dbname,
	}
	return u.String()
}
