package middleware

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/semaphore"
)

// ConcurrencyLimit lets at most n requests run at once and rejects the rest
// with 429 and a Retry-After hint.
func ConcurrencyLimit(n int, retryAfterSeconds int) Middleware {
	slots := semaphore.NewWeighted(int64(n))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slots.TryAcquire(1) {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many reports in progress"}` + "\n"))
				return
			}
			defer slots.Release(1)
			next.ServeHTTP(w, r)
		})
	}
}
