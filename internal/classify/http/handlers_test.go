package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"segmenter/internal/classify/domain"
	chttp "segmenter/internal/classify/http"
	svc "segmenter/internal/classify/service"
	perr "segmenter/internal/platform/errors"
	phttp "segmenter/internal/platform/net/http"
	"segmenter/internal/platform/net/middleware"
	kit "segmenter/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type fakeService struct {
	res domain.Result
	err error
	got domain.Input
}

func (f *fakeService) Classify(_ context.Context, in domain.Input) (domain.Result, error) {
	f.got = in
	if f.err != nil {
		return domain.Result{}, f.err
	}
	return f.res, nil
}

func newTestHandler(s svc.Service) stdhttp.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	r := phttp.AdaptChi(mux)
	chttp.Register(r, s, chttp.Options{MaxBodyBytes: 1 << 20, MaxTextLen: 10000})
	return mux
}

func postJSON(t *testing.T, h stdhttp.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodPost, "/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestClassifyEndpointSuccess(t *testing.T) {
	processed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	f := &fakeService{res: domain.Result{
		CustomerID:   "cust-1",
		Segment:      domain.SegmentHighValue,
		Confidence:   0.92,
		HistoryCount: 3,
		Recent: []domain.Record{
			{ID: 7, CustomerID: "cust-1", Segment: domain.SegmentMidValue, Confidence: 0.61, ProcessedAt: processed},
			{ID: 5, CustomerID: "cust-1", Segment: domain.SegmentAtRisk, Confidence: 0.80, ProcessedAt: processed.Add(-time.Hour)},
		},
	}}
	h := newTestHandler(f)

	rr := postJSON(t, h, `{"customer_id":"cust-1","review_text":"great product"}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}

	var env struct {
		phttp.Envelope
		Data domain.Result `json:"data"`
	}
	kit.MustNoErr(t, json.Unmarshal(rr.Body.Bytes(), &env))

	if env.Data.Segment != domain.SegmentHighValue || env.Data.Confidence != 0.92 {
		t.Fatalf("data = %+v", env.Data)
	}
	if env.Data.HistoryCount != 3 || len(env.Data.Recent) != 2 {
		t.Fatalf("history = %+v", env.Data)
	}
	// request id is generated and echoed inside the result
	if env.Data.RequestID == "" {
		t.Fatalf("request id missing in result")
	}
	if env.Data.RequestID != rr.Header().Get(middleware.HeaderRequestID) {
		t.Fatalf("result request id should match the response header")
	}
	if env.Data.ProcessingTimeMS < 0 {
		t.Fatalf("processing time = %v", env.Data.ProcessingTimeMS)
	}
	// the service saw the validated input
	if f.got.CustomerID != "cust-1" || f.got.ReviewText != "great product" {
		t.Fatalf("service input = %+v", f.got)
	}
}

func TestClassifyEndpointValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		status  int
		message string
		field   string
	}{
		{"malformed", `{"customer_id": "x"`, 400, "malformed JSON payload", ""},
		{"missing customer", `{"review_text":"fine"}`, 400, "customer_id is required", "customer_id"},
		{"missing review", `{"customer_id":"c"}`, 400, "review_text is required", "review_text"},
		{"non-string review", `{"customer_id":"c","review_text":42}`, 400, "review_text must be a string", "review_text"},
		{"null customer", `{"customer_id":null,"review_text":"fine"}`, 400, "customer_id must be a string", "customer_id"},
		{"empty review", `{"customer_id":"c","review_text":"   "}`, 400, "required", "review_text"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &fakeService{}
			rr := postJSON(t, newTestHandler(f), c.body)

			if rr.Code != c.status {
				t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
			}
			var env phttp.Envelope
			kit.MustNoErr(t, json.Unmarshal(rr.Body.Bytes(), &env))
			kit.MustContain(t, env.Error, c.message)
			if env.Field != c.field {
				t.Fatalf("field = %q, want %q", env.Field, c.field)
			}
			// rejected requests never reach the service
			if f.got.CustomerID != "" || f.got.ReviewText != "" {
				t.Fatalf("service was called for invalid input")
			}
		})
	}
}

func TestClassifyEndpointOverlongText(t *testing.T) {
	f := &fakeService{}
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	chttp.Register(r, f, chttp.Options{MaxBodyBytes: 1 << 20, MaxTextLen: 50})

	body := `{"customer_id":"c","review_text":"` + strings.Repeat("a", 51) + `"}`
	rr := postJSON(t, mux, body)
	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), "review_text exceeds maximum length of 50 characters")
}

func TestClassifyEndpointOversizedBody(t *testing.T) {
	f := &fakeService{}
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	chttp.Register(r, f, chttp.Options{MaxBodyBytes: 64, MaxTextLen: 10000})

	body := `{"customer_id":"c","review_text":"` + strings.Repeat("a", 200) + `"}`
	rr := postJSON(t, mux, body)
	if rr.Code != stdhttp.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	kit.MustContain(t, rr.Body.String(), "request body exceeds 64 bytes")
}

func TestClassifyEndpointServiceErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		text   string
	}{
		{perr.PoolExhaustedf("no connection available within 2s"), 503, "server busy, retry later"},
		{perr.Unavailablef("conn lost"), 503, "service temporarily unavailable"},
		{perr.DBf("insert failed"), 500, "internal server error"},
		{perr.Inferencef("scorer offline"), 500, "internal server error"},
	}
	for _, c := range cases {
		rr := postJSON(t, newTestHandler(&fakeService{err: c.err}), `{"customer_id":"c","review_text":"fine"}`)
		if rr.Code != c.status {
			t.Fatalf("%v: status = %d", c.err, rr.Code)
		}
		kit.MustContain(t, rr.Body.String(), c.text)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(&fakeService{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"status":"ok"`)
}

func TestClassifyInboundRequestIDEchoed(t *testing.T) {
	f := &fakeService{res: domain.Result{CustomerID: "c", Segment: domain.SegmentMidValue}}
	h := newTestHandler(f)

	req := httptest.NewRequest(stdhttp.MethodPost, "/classify", bytes.NewBufferString(`{"customer_id":"c","review_text":"fine"}`))
	req.Header.Set(middleware.HeaderRequestID, "trace-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"request_id":"trace-42"`)
}
