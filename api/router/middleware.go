package router

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/paydemo/braintree-portal/api/bootstrap"
	m "github.com/paydemo/braintree-portal/pkg/metrics"
)

type ctxKey int

const requestIDKey ctxKey = iota

// requestIDMiddleware honors an inbound X-Request-Id or generates one, echoes
// it on the response, and makes it available to log lines.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// serviceReadyMiddleware shields the /api handlers when bootstrap failed and
// no service was wired; the handlers themselves hold the service from build
// time and would otherwise call through a nil interface.
func serviceReadyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bootstrap.GetService() == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service not initialized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		statusLabel := "FAILED"
		if rec.status >= 200 && rec.status < 400 {
			statusLabel = "SUCCESS"
		}
		m.IncRequest(statusLabel, r.Method)
		m.ObserveDuration(statusLabel, r.Method, time.Since(start).Seconds())
	})
}
