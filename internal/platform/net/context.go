// Package net carries per request identity through a context
package net

import (
	"context"

	"leetgen/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores id under chi's request id key and on the logger context;
// empty ids leave ctx alone
func WithRequest(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return logger.WithRequest(context.WithValue(ctx, chimw.RequestIDKey, id), id)
}

// RequestID is the id chi's RequestID middleware or WithRequest stored, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
