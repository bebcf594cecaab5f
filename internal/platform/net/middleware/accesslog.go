package middleware

import (
	"net/http"
	"time"

	"leetgen/internal/platform/logger"
	pnet "leetgen/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog puts chi's request id where logger.C finds it and echoes it as X-Request-ID.
// Mount after RequestID
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pnet.RequestID(r.Context())
		if id != "" {
			w.Header().Set("X-Request-ID", id)
		}
		next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
	})
}

// AccessLog writes one line per request; requests taking slow or longer log at warn,
// 5xx at error. slow <= 0 never warns
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log := logger.C(r.Context())
			evt := log.Info()
			switch {
			case status >= 500:
				evt = log.Error()
			case slow > 0 && took >= slow:
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("took", took).
				Msg("request")
		})
	}
}
