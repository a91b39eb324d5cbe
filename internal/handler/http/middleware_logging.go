package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
)

// withLogging writes one access log line per request and feeds the request
// duration histogram. Routes are reported by their chi pattern so that note
// ids do not end up as label values.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		if lw.status == 0 {
			lw.status = http.StatusOK
		}

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		if h.metrics != nil {
			h.metrics.ObserveHTTP(method, route, lw.status, duration)
		}

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Str("route", route).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
