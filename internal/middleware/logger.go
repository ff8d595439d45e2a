// Package middleware provides reusable HTTP middleware for the API server.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/photoupload/service/internal/metrics"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// unmatchedRoute labels requests that no route pattern matched.
const unmatchedRoute = "unmatched"

// wrappedWriter captures the status code written by downstream handlers.
type wrappedWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *wrappedWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logger attaches a request-scoped zerolog logger to the context, then logs
// method, route, status code, and duration for every request and counts it in reg.
func Logger(reg *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rid := r.Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, rid)

			logger := log.With().
				Str("request_id", rid).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_ip", r.RemoteAddr).
				Logger()
			r = r.WithContext(logger.WithContext(r.Context()))

			ww := &wrappedWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			reg.Inc(r.Context(), metrics.HTTPRequestsTotal, map[string]string{
				"method": r.Method,
				"route":  route,
				"status": statusClass(ww.statusCode),
			}, 1)

			ev := logger.Info()
			if ww.statusCode >= 500 {
				ev = logger.Error()
			}
			ev.Int("status", ww.statusCode).
				Dur("duration", time.Since(start)).
				Msg("http request served")
		})
	}
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "0"
	}
	return strconv.Itoa(code/100) + "xx"
}
