// Package service contains the classification pipeline: invoke the
// collaborators, then record the verdict and fetch history as one unit
// of work against the pool
package service

import (
	"context"

	"segmenter/internal/classify/domain"
	"segmenter/internal/classify/repo"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"
	"segmenter/internal/platform/store"
)

// history rows fetched per request; responses expose at most recentExposed
const (
	historyFetch  = 5
	recentExposed = 2
)

// Service defines the service contract for classification
type Service interface{ domain.ServicePort }

// Options configures pipeline policy
type Options struct {
	// StrictInference fails the request when a collaborator fails.
	// When false (the default policy) normalization failures fall back
	// to an empty string and scoring failures to ("unknown", 0.0)
	StrictInference bool
}

// Svc implements the Service interface
type Svc struct {
	db     store.ConnRunner
	binder store.Binder[repo.Repo]
	norm   domain.Normalizer
	scorer domain.Scorer
	opts   Options
}

// New creates a new classification service
func New(
	db store.ConnRunner,
	binder store.Binder[repo.Repo],
	norm domain.Normalizer,
	scorer domain.Scorer,
	opts Options,
) *Svc {
	if db == nil {
		panic("classify.Service requires a non nil ConnRunner")
	}
	if binder == nil {
		panic("classify.Service requires a non nil Repo binder")
	}
	if norm == nil || scorer == nil {
		panic("classify.Service requires normalizer and scorer collaborators")
	}
	return &Svc{db: db, binder: binder, norm: norm, scorer: scorer, opts: opts}
}

// EnsureSchema acquires one connection and idempotently creates the
// classifications table and index. Callers decide whether failure is fatal
func (s *Svc) EnsureSchema(ctx context.Context) error {
	return s.db.WithConn(ctx, func(c store.Conn) error {
		return s.binder.Bind(c).EnsureSchema(ctx)
	})
}

// Classify runs the pipeline for one validated input: clean, score,
// then insert and read recent history within one acquire/release cycle
func (s *Svc) Classify(ctx context.Context, in domain.Input) (domain.Result, error) {
	var zero domain.Result
	log := logger.C(ctx)

	score, err := s.invoke(ctx, in.ReviewText)
	if err != nil {
		return zero, err
	}
	log.Debug().
		Str("customer_id", in.CustomerID).
		Str("segment", score.Segment).
		Float64("confidence", score.Confidence).
		Msg("review scored")

	var (
		inserted domain.Record
		history  []domain.Record
	)
	err = s.db.WithConn(ctx, func(c store.Conn) error {
		if err := c.Tx(ctx, func(q store.RowQuerier) error {
			rec, err := s.binder.Bind(q).Insert(ctx, in.CustomerID, score.Segment, score.Confidence)
			if err != nil {
				return err
			}
			inserted = rec
			return nil
		}); err != nil {
			return err
		}

		rows, err := s.binder.Bind(c).Recent(ctx, in.CustomerID, historyFetch)
		if err != nil {
			return err
		}
		history = rows
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("customer_id", in.CustomerID).Msg("persistence unit of work failed")
		return zero, err
	}
	log.Debug().Int64("record_id", inserted.ID).Msg("classification persisted")

	// concurrent sibling requests may or may not appear here; only the
	// row this request inserted is filtered out
	prior := make([]domain.Record, 0, len(history))
	for _, r := range history {
		if r.ID != inserted.ID {
			prior = append(prior, r)
		}
	}
	recent := prior
	if len(recent) > recentExposed {
		recent = recent[:recentExposed]
	}

	return domain.Result{
		CustomerID:   in.CustomerID,
		Segment:      score.Segment,
		Confidence:   score.Confidence,
		HistoryCount: len(prior),
		Recent:       recent,
	}, nil
}

// invoke runs the two collaborators under the configured failure policy
func (s *Svc) invoke(ctx context.Context, text string) (domain.Score, error) {
	log := logger.C(ctx)

	cleaned, err := s.norm.Clean(text)
	if err != nil {
		if s.opts.StrictInference {
			return domain.Score{}, perr.Wrap(err, perr.ErrorCodeInference, "text normalization failed")
		}
		log.Warn().Err(err).Msg("text normalization failed; continuing with empty text")
		cleaned = ""
	}

	score, err := s.scorer.Score(cleaned)
	if err != nil {
		if s.opts.StrictInference {
			return domain.Score{}, perr.Wrap(err, perr.ErrorCodeInference, "scoring failed")
		}
		log.Warn().Err(err).Msg("scoring failed; falling back to unknown segment")
		score = domain.Score{Segment: domain.SegmentUnknown, Confidence: 0.0}
	}
	return score, nil
}
