// Package middleware holds the request pipeline: chi's stock middlewares under our names,
// CORS, panic recovery and the zerolog access log
package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Stock chi middlewares, re-exported so service code never imports chi
var (
	RequestID    = chimw.RequestID
	RealIP       = chimw.RealIP
	NoCache      = chimw.NoCache
	StripSlashes = chimw.StripSlashes
	Timeout      = chimw.Timeout
	Throttle     = chimw.Throttle
	Heartbeat    = chimw.Heartbeat
	Compress     = chimw.Compress
)

// CORSOptions is the part of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins []string // empty allows any origin
	MaxAge         int
}

// CORS allows GET and POST with JSON bodies and exposes X-Request-ID
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}
