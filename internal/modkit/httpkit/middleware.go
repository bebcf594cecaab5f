package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"leetgen/internal/platform/net/middleware"
)

const (
	slowRequest    = 500 * time.Millisecond
	requestTimeout = 30 * time.Second
)

// CommonStack is the middleware every versioned route runs behind, outermost first
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		middleware.RequestLog,
		middleware.RecoverJSON,
		middleware.AccessLog(slowRequest),
		middleware.NoCache,
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes,
		middleware.Timeout(requestTimeout),
	}
}

// Edge is the root level stack: a load balancer heartbeat on /health and,
// when maxInFlight > 0, a global cap on concurrent requests
func Edge(maxInFlight int) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{middleware.Heartbeat("/health")}
	if maxInFlight > 0 {
		stack = append(stack, middleware.Throttle(maxInFlight))
	}
	return stack
}
