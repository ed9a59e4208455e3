package middleware

import (
	"net/http"

	"golang.org/x/sync/semaphore"
)

// Limit bounds the number of requests handled concurrently to n workers.
// Over-limit requests wait for a slot (or the client's context to end);
// backpressure beyond that is expressed by pool exhaustion downstream,
// not by queuing here
func Limit(n int) func(http.Handler) http.Handler {
	if n <= 0 {
		n = 1
	}
	sem := semaphore.NewWeighted(int64(n))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sem.Acquire(r.Context(), 1); err != nil {
				// caller went away while waiting for a worker
				return
			}
			defer sem.Release(1)
			next.ServeHTTP(w, r)
		})
	}
}
