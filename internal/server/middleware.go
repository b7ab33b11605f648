package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the per-request id in both directions
const RequestIDHeader = "X-Request-ID"

// statusWriter captures the status code written by a handler
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

// routeLabeler maps a request path to the route that serves it. Subtree
// routes such as "/assets/" match by prefix; "/" only matches exactly.
// Paths matching nothing share the "other" label.
func routeLabeler(routes []string) func(string) string {
	exact := make(map[string]bool, len(routes))
	var subtrees []string
	for _, r := range routes {
		exact[r] = true
		if len(r) > 1 && strings.HasSuffix(r, "/") {
			subtrees = append(subtrees, r)
		}
	}

	return func(path string) string {
		if exact[path] {
			return path
		}
		best := ""
		for _, s := range subtrees {
			if strings.HasPrefix(path, s) && len(s) > len(best) {
				best = s
			}
		}
		if best == "" {
			return "other"
		}
		return best
	}
}

// WithRequestLogging assigns a request id, logs every request and counts it.
// An incoming X-Request-ID is kept.
func WithRequestLogging(next http.Handler, logger zerolog.Logger, rec Recorder, routes []string) http.Handler {
	if rec == nil {
		rec = nopRecorder{}
	}
	label := routeLabeler(routes)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		rec.CountRequest(label(r.URL.Path), sw.status)

		logger.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}
