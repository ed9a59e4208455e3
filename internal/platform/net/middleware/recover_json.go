package middleware

import (
	stdjson "encoding/json"
	"net/http"
	"runtime/debug"

	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"
)

type panicWire struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// RecoverJSON converts panics into a JSON 500 and logs the stack with the
// request id
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				reqID := logger.RequestID(r.Context())

				logger.C(r.Context()).Error().
					Interface("panic", v).
					Msgf("panic recovered\n%s", debug.Stack())

				wire := perr.Public(perr.PanicErrf("panic recovered"))
				body := panicWire{
					StatusCode: http.StatusInternalServerError,
					Status:     http.StatusText(http.StatusInternalServerError),
					Error:      wire.Message,
					RequestID:  reqID,
				}

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = stdjson.NewEncoder(w).Encode(body)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
