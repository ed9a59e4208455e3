// Package repo provides postgres access for classifications
package repo

import (
	"context"

	"segmenter/internal/classify/domain"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/store"
)

// Repo defines the repository contract for the classifications table
type Repo interface {
	// Insert appends one row; the store assigns id and processed_at
	Insert(ctx context.Context, customerID, segment string, confidence float64) (domain.Record, error)

	// Recent returns up to limit rows for the customer, newest first
	Recent(ctx context.Context, customerID string, limit int) ([]domain.Record, error)

	// EnsureSchema idempotently creates the table and lookup index
	EnsureSchema(ctx context.Context) error
}

type (
	// PG implements the Repo binder for Postgres
	PG struct{}

	queries struct{ q store.RowQuerier }
)

// NewPG creates a new Postgres repository binder
func NewPG() store.Binder[Repo] { return PG{} }

// Bind binds a query surface to the Repo implementation
func (PG) Bind(q store.RowQuerier) Repo { return &queries{q: q} }

const historyLimit = 5

func (r *queries) Insert(
	ctx context.Context, customerID, segment string, confidence float64,
) (domain.Record, error) {
	const sql = `
INSERT INTO classifications (customer_id, segment, confidence)
VALUES ($1, $2, $3)
RETURNING id, processed_at
`
	rec := domain.Record{
		CustomerID: customerID,
		Segment:    segment,
		Confidence: confidence,
	}
	err := r.q.QueryRow(ctx, sql, customerID, segment, confidence).
		Scan(&rec.ID, &rec.ProcessedAt)
	if err != nil {
		return domain.Record{}, perr.FromPostgres(err, "insert classification")
	}
	return rec, nil
}

func (r *queries) Recent(
	ctx context.Context, customerID string, limit int,
) ([]domain.Record, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}
	const sql = `
SELECT id, customer_id, segment, confidence, processed_at
FROM classifications
WHERE customer_id = $1
ORDER BY processed_at DESC, id DESC
LIMIT $2
`
	rows, err := r.q.Query(ctx, sql, customerID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "query recent classifications")
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.CustomerID,
			&rec.Segment,
			&rec.Confidence,
			&rec.ProcessedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan classification row")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate classification rows")
	}
	return out, nil
}

func (r *queries) EnsureSchema(ctx context.Context) error {
	const table = `
CREATE TABLE IF NOT EXISTS classifications (
	id           BIGSERIAL PRIMARY KEY,
	customer_id  TEXT NOT NULL,
	segment      TEXT NOT NULL,
	confidence   DOUBLE PRECISION NOT NULL,
	processed_at TIMESTAMPTZ NOT NULL DEFAULT now()
)
`
	const index = `
CREATE INDEX IF NOT EXISTS classifications_customer_recent_idx
ON classifications (customer_id, processed_at DESC)
`
	if _, err := r.q.Exec(ctx, table); err != nil {
		return perr.FromPostgres(err, "create classifications table")
	}
	if _, err := r.q.Exec(ctx, index); err != nil {
		return perr.FromPostgres(err, "create classifications index")
	}
	return nil
}
