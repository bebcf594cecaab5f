package net

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequest(t *testing.T) {
	base := context.Background()
	if WithRequest(base, "") != base {
		t.Fatal("empty id should return ctx unchanged")
	}
	if RequestID(base) != "" {
		t.Fatal("bare ctx has a request id")
	}
	if got := RequestID(WithRequest(base, "host/abc-000001")); got != "host/abc-000001" {
		t.Fatalf("RequestID = %q", got)
	}
}

func TestRequestID_FromChi(t *testing.T) {
	var got string
	h := chimw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "upstream-9")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "upstream-9" {
		t.Fatalf("RequestID = %q", got)
	}
}
