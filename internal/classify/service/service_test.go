package service_test

import (
	"context"
	stderrs "errors"
	"testing"
	"time"

	"segmenter/internal/classify/domain"
	"segmenter/internal/classify/repo"
	"segmenter/internal/classify/service"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/store"
	kit "segmenter/internal/platform/testkit"
)

// fake collaborators

type fakeNorm struct {
	err error
}

func (f fakeNorm) Clean(s string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return s, nil
}

type fakeScorer struct {
	score domain.Score
	err   error
	got   string
}

func (f *fakeScorer) Score(text string) (domain.Score, error) {
	f.got = text
	if f.err != nil {
		return domain.Score{}, f.err
	}
	return f.score, nil
}

// fake store seam

type fakeConn struct {
	txCalls int
	txErr   error
}

func (c *fakeConn) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	return nil, nil
}
func (c *fakeConn) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (c *fakeConn) QueryRow(context.Context, string, ...any) store.Row       { return nil }

func (c *fakeConn) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	c.txCalls++
	if c.txErr != nil {
		return c.txErr
	}
	return fn(c)
}

type fakeRunner struct {
	conn     *fakeConn
	err      error
	acquires int
	releases int
}

func (r *fakeRunner) WithConn(ctx context.Context, fn func(c store.Conn) error) error {
	if r.err != nil {
		return r.err
	}
	r.acquires++
	defer func() { r.releases++ }()
	return fn(r.conn)
}

// fake repo bound per query surface

type fakeRepo struct {
	inserted   domain.Record
	insertErr  error
	recent     []domain.Record
	recentErr  error
	schemaErr  error
	insertN    int
	recentN    int
	recentArgs struct {
		customerID string
		limit      int
	}
}

func (f *fakeRepo) Insert(_ context.Context, customerID, segment string, confidence float64) (domain.Record, error) {
	f.insertN++
	if f.insertErr != nil {
		return domain.Record{}, f.insertErr
	}
	rec := f.inserted
	rec.CustomerID = customerID
	rec.Segment = segment
	rec.Confidence = confidence
	return rec, nil
}

func (f *fakeRepo) Recent(_ context.Context, customerID string, limit int) ([]domain.Record, error) {
	f.recentN++
	f.recentArgs.customerID = customerID
	f.recentArgs.limit = limit
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recent, nil
}

func (f *fakeRepo) EnsureSchema(context.Context) error { return f.schemaErr }

type fakeBinder struct{ r *fakeRepo }

func (b fakeBinder) Bind(store.RowQuerier) repo.Repo { return b.r }

func records(ids ...int64) []domain.Record {
	out := make([]domain.Record, 0, len(ids))
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range ids {
		out = append(out, domain.Record{
			ID:          id,
			CustomerID:  "cust-1",
			Segment:     domain.SegmentMidValue,
			Confidence:  0.6,
			ProcessedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func newSvc(r *fakeRunner, fr *fakeRepo, n domain.Normalizer, sc domain.Scorer, opts service.Options) *service.Svc {
	return service.New(r, fakeBinder{r: fr}, n, sc, opts)
}

func TestNewPanicsOnNilCollaborators(t *testing.T) {
	runner := &fakeRunner{conn: &fakeConn{}}
	fr := &fakeRepo{}
	norm := fakeNorm{}
	sc := &fakeScorer{}

	kit.MustPanic(t, func() { service.New(nil, fakeBinder{r: fr}, norm, sc, service.Options{}) })
	kit.MustPanic(t, func() { service.New(runner, nil, norm, sc, service.Options{}) })
	kit.MustPanic(t, func() { service.New(runner, fakeBinder{r: fr}, nil, sc, service.Options{}) })
	kit.MustPanic(t, func() { service.New(runner, fakeBinder{r: fr}, norm, nil, service.Options{}) })
}

func TestClassifySuccess(t *testing.T) {
	fr := &fakeRepo{
		inserted: domain.Record{ID: 10},
		recent:   records(10, 7, 5, 3),
	}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentHighValue, Confidence: 0.92}}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{})
	res, err := s.Classify(context.Background(), domain.Input{CustomerID: "cust-1", ReviewText: "great"})
	kit.MustNoErr(t, err)

	if res.Segment != domain.SegmentHighValue || res.Confidence != 0.92 {
		t.Fatalf("result = %+v", res)
	}
	if res.CustomerID != "cust-1" {
		t.Fatalf("customer id = %q", res.CustomerID)
	}

	// just-inserted row is filtered; count reflects prior rows only
	if res.HistoryCount != 3 {
		t.Fatalf("history count = %d, want 3", res.HistoryCount)
	}
	if len(res.Recent) != 2 || res.Recent[0].ID != 7 || res.Recent[1].ID != 5 {
		t.Fatalf("recent = %+v", res.Recent)
	}

	// one acquire/release cycle, one transaction, in-order calls
	if runner.acquires != 1 || runner.releases != 1 {
		t.Fatalf("acquires=%d releases=%d", runner.acquires, runner.releases)
	}
	if runner.conn.txCalls != 1 || fr.insertN != 1 || fr.recentN != 1 {
		t.Fatalf("tx=%d insert=%d recent=%d", runner.conn.txCalls, fr.insertN, fr.recentN)
	}
	if fr.recentArgs.customerID != "cust-1" || fr.recentArgs.limit != 5 {
		t.Fatalf("recent args = %+v", fr.recentArgs)
	}
}

func TestClassifyNoPriorHistory(t *testing.T) {
	fr := &fakeRepo{
		inserted: domain.Record{ID: 1},
		recent:   records(1), // only the row this request created
	}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.6}}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{})
	res, err := s.Classify(context.Background(), domain.Input{CustomerID: "cust-1", ReviewText: "fine"})
	kit.MustNoErr(t, err)

	if res.HistoryCount != 0 {
		t.Fatalf("history count = %d, want 0", res.HistoryCount)
	}
	if len(res.Recent) != 0 {
		t.Fatalf("recent should be empty: %+v", res.Recent)
	}
}

func TestClassifySiblingRowsSurvive(t *testing.T) {
	// a concurrent sibling may push this request's row out of the
	// newest five; nothing is filtered then
	fr := &fakeRepo{
		inserted: domain.Record{ID: 42},
		recent:   records(50, 49, 48, 47, 46),
	}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.6}}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{})
	res, err := s.Classify(context.Background(), domain.Input{CustomerID: "cust-1", ReviewText: "fine"})
	kit.MustNoErr(t, err)

	if res.HistoryCount != 5 {
		t.Fatalf("history count = %d, want 5", res.HistoryCount)
	}
	if len(res.Recent) != 2 || res.Recent[0].ID != 50 || res.Recent[1].ID != 49 {
		t.Fatalf("recent = %+v", res.Recent)
	}
}

func TestClassifyStrictInferenceFailsFast(t *testing.T) {
	fr := &fakeRepo{}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{err: stderrs.New("model offline")}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{StrictInference: true})
	_, err := s.Classify(context.Background(), domain.Input{CustomerID: "c", ReviewText: "r"})
	kit.MustErr(t, err)
	if !perr.IsCode(err, perr.ErrorCodeInference) {
		t.Fatalf("code = %v, want Inference", perr.CodeOf(err))
	}

	// nothing was persisted and no connection was touched
	if runner.acquires != 0 || fr.insertN != 0 {
		t.Fatalf("strict failure must not reach the store: acquires=%d inserts=%d", runner.acquires, fr.insertN)
	}
}

func TestClassifyLenientScorerFallback(t *testing.T) {
	fr := &fakeRepo{inserted: domain.Record{ID: 2}, recent: records(2)}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{err: stderrs.New("model offline")}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{})
	res, err := s.Classify(context.Background(), domain.Input{CustomerID: "c", ReviewText: "r"})
	kit.MustNoErr(t, err)

	if res.Segment != domain.SegmentUnknown || res.Confidence != 0.0 {
		t.Fatalf("fallback result = %+v", res)
	}
	// the fallback is still persisted
	if fr.insertN != 1 {
		t.Fatalf("insertN = %d", fr.insertN)
	}
}

func TestClassifyLenientCleanerFallback(t *testing.T) {
	fr := &fakeRepo{inserted: domain.Record{ID: 3}, recent: records(3)}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.55}}

	s := newSvc(runner, fr, fakeNorm{err: stderrs.New("bad rune")}, sc, service.Options{})
	res, err := s.Classify(context.Background(), domain.Input{CustomerID: "c", ReviewText: "whatever"})
	kit.MustNoErr(t, err)

	// scoring proceeds on empty text
	if sc.got != "" {
		t.Fatalf("scorer input = %q, want empty", sc.got)
	}
	if res.Segment != domain.SegmentMidValue {
		t.Fatalf("segment = %q", res.Segment)
	}
}

func TestClassifyStrictCleanerFailure(t *testing.T) {
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.55}}

	s := newSvc(runner, &fakeRepo{}, fakeNorm{err: stderrs.New("bad rune")}, sc, service.Options{StrictInference: true})
	_, err := s.Classify(context.Background(), domain.Input{CustomerID: "c", ReviewText: "r"})
	kit.MustErr(t, err)
	if !perr.IsCode(err, perr.ErrorCodeInference) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}

func TestClassifyPoolExhaustedPropagates(t *testing.T) {
	runner := &fakeRunner{err: perr.PoolExhaustedf("no connection available within 2s")}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.6}}

	s := newSvc(runner, &fakeRepo{}, fakeNorm{}, sc, service.Options{})
	_, err := s.Classify(context.Background(), domain.Input{CustomerID: "c", ReviewText: "r"})
	kit.MustErr(t, err)
	if !perr.IsCode(err, perr.ErrorCodePoolExhausted) {
		t.Fatalf("code = %v, want PoolExhausted", perr.CodeOf(err))
	}
}

func TestClassifyInsertFailureSkipsHistoryRead(t *testing.T) {
	fr := &fakeRepo{insertErr: perr.DBf("insert classification")}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.6}}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{})
	_, err := s.Classify(context.Background(), domain.Input{CustomerID: "c", ReviewText: "r"})
	kit.MustErr(t, err)
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
	if fr.recentN != 0 {
		t.Fatalf("history read should not run after a failed insert")
	}
	// the connection still went back to the pool
	if runner.releases != 1 {
		t.Fatalf("releases = %d", runner.releases)
	}
}

func TestClassifyRecentFailurePropagates(t *testing.T) {
	fr := &fakeRepo{inserted: domain.Record{ID: 9}, recentErr: perr.Unavailablef("conn lost")}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.6}}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{})
	_, err := s.Classify(context.Background(), domain.Input{CustomerID: "c", ReviewText: "r"})
	kit.MustErr(t, err)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}

func TestEnsureSchemaDelegates(t *testing.T) {
	fr := &fakeRepo{}
	runner := &fakeRunner{conn: &fakeConn{}}
	sc := &fakeScorer{score: domain.Score{Segment: domain.SegmentMidValue, Confidence: 0.6}}

	s := newSvc(runner, fr, fakeNorm{}, sc, service.Options{})
	kit.MustNoErr(t, s.EnsureSchema(context.Background()))
	if runner.acquires != 1 {
		t.Fatalf("acquires = %d", runner.acquires)
	}

	fr.schemaErr = perr.DBf("permission denied")
	kit.MustErr(t, s.EnsureSchema(context.Background()))
}
