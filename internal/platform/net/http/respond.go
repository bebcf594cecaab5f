// Package http is the transport layer: a chi backed Router, the response envelope,
// the pprof mount and the server lifecycle
package http

import (
	"encoding/json"
	"net/http"

	perr "leetgen/internal/platform/errors"
	"leetgen/internal/platform/logger"
	pnet "leetgen/internal/platform/net"
	"leetgen/internal/platform/net/http/bind"
)

// Envelope wraps every JSON body the API writes, success or failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, env Envelope) {
	env.Status = http.StatusText(env.StatusCode)
	env.RequestID = pnet.RequestID(r.Context())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(env.StatusCode)
	_ = json.NewEncoder(w).Encode(env)
}

// WriteError writes err as an error envelope; the status comes from its code.
// Server-side failures are logged with their op, panics are already logged by recovery
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	wire := perr.WireFrom(err)
	status := perr.HTTPStatus(err)
	if status >= http.StatusInternalServerError && wire.Code != perr.ErrorCodePanic {
		ev := logger.C(r.Context()).Error().Err(err).Int("status", status)
		if e, ok := perr.As(err); ok && e.Op() != "" {
			ev = ev.Str("op", e.Op())
		}
		ev.Msg("request failed")
	}
	writeEnvelope(w, r, Envelope{
		StatusCode: status,
		Code:       wire.Code,
		Error:      wire.Message,
		Field:      wire.Field,
	})
}

// Response is what a return-style handler hands back. An error Body wins over Status
type Response struct {
	Status int
	Body   any
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: http.StatusOK, Body: data} }

// Error defers status and body to err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return-style handler to net/http
func Handle(h func(*http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(r)
		if err, ok := resp.Body.(error); ok {
			WriteError(w, r, err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		writeEnvelope(w, r, Envelope{StatusCode: status, Data: resp.Body})
	}
}

// JSON binds and validates the request body into T, then calls fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// NoBody calls fn without touching the request body
func NoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	return OK(out)
}
