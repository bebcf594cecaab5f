package middleware

import (
	"net/http"
	"runtime/debug"

	perr "leetgen/internal/platform/errors"
	"leetgen/internal/platform/logger"
	phttp "leetgen/internal/platform/net/http"
)

// RecoverJSON turns a panicking handler into a 500 error envelope and logs the stack.
// http.ErrAbortHandler is re-raised so net/http can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("handler panicked")
			phttp.WriteError(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
