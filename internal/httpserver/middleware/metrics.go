package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jammehabdou64/documentation/internal/observability"
)

// Metrics records request counts and latency by route pattern.
func Metrics(m *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newResponseRecorder(w)
			start := time.Now()
			defer func() {
				route := observability.RouteLabel(routePattern(r))
				m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.Status())).Inc()
				m.HTTPRequestDurationSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
			}()
			next.ServeHTTP(recorder, r)
		})
	}
}
