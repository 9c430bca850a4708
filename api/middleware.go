package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/xid"
)

// loggingMiddleware logs HTTP requests and puts a request-scoped logger into the context
func loggingMiddleware(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := xid.New().String()
			w.Header().Set("X-Request-Id", reqID)

			reqLogger := logger.With("req", reqID)
			r = r.WithContext(log.WithContext(r.Context(), reqLogger))

			wrapper := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapper, r)

			reqLogger.Infof("%s %s %d %s", r.Method, r.URL.Path, wrapper.statusCode, time.Since(start))
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
