// Package middleware provides the request middleware stack shared by HTTP
// transports: request-id propagation, access logging, panic recovery, and
// bounded concurrency
package middleware

import (
	"net/http"

	"segmenter/internal/platform/logger"

	"github.com/google/uuid"
)

// HeaderRequestID is the trace header honored on the way in and mirrored
// on the way out
const HeaderRequestID = "X-Request-ID"

// RequestID propagates a caller-supplied trace id or generates a fresh one,
// stashing it on the context before the pipeline runs
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), id)))
	})
}
