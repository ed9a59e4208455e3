// Package http provides the REST transport for classification
package http

import (
	"errors"
	"io"
	stdhttp "net/http"
	"time"

	"segmenter/internal/classify/domain"
	svc "segmenter/internal/classify/service"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"
	phttp "segmenter/internal/platform/net/http"
)

// Options bounds the transport surface
type Options struct {
	// MaxBodyBytes caps the request body before the validator runs;
	// oversized bodies answer 413
	MaxBodyBytes int64

	// MaxTextLen bounds review_text length during validation
	MaxTextLen int
}

// Register mounts the classification endpoints on the given router
func Register(r phttp.Router, s svc.Service, opt Options) {
	h := &handlers{svc: s, opt: opt}
	r.Post("/classify", h.classify)
	r.Get("/health", h.health)
}

type handlers struct {
	svc svc.Service
	opt Options
}

func (h *handlers) classify(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	start := time.Now()
	ctx := r.Context()
	log := logger.C(ctx)

	r.Body = stdhttp.MaxBytesReader(w, r.Body, h.opt.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *stdhttp.MaxBytesError
		if errors.As(err, &mbe) {
			phttp.RespondError(w, r, perr.TooLargef("request body exceeds %d bytes", h.opt.MaxBodyBytes))
			return
		}
		phttp.RespondError(w, r, perr.JSONErrf("unreadable request body"))
		return
	}

	in, err := domain.ParsePayload(body, h.opt.MaxTextLen)
	if err != nil {
		log.Warn().Err(err).Msg("request rejected by validator")
		phttp.RespondError(w, r, err)
		return
	}
	log.Info().Str("customer_id", in.CustomerID).Msg("classification request accepted")

	res, err := h.svc.Classify(ctx, in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	res.RequestID = logger.RequestID(ctx)
	res.ProcessingTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	phttp.RespondOK(w, r, res)
}

func (h *handlers) health(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	phttp.JSON(w, stdhttp.StatusOK, map[string]string{"status": "ok"})
}
