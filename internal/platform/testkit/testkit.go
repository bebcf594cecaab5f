// Package testkit holds the assertions and seam helpers shared by package tests
package testkit

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// recovered runs fn and returns what it panicked with, nil when it returned normally
func recovered(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}

// MustPanic fails t unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	if recovered(fn) == nil {
		t.Fatalf("expected a panic")
	}
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	if v := recovered(fn); v != nil {
		t.Fatalf("unexpected panic: %v", v)
	}
}

// MustContain fails t unless s contains sub; long s is cut to keep failures readable
func MustContain(t testing.TB, s, sub string) {
	t.Helper()
	if strings.Contains(s, sub) {
		return
	}
	shown := s
	if len(shown) > 2048 {
		shown = shown[:2048] + fmt.Sprintf("... (%d bytes)", len(s))
	}
	t.Fatalf("missing %q in:\n%s", sub, shown)
}

// Swap points *target at v until the test ends
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	old := *target
	*target = v
	t.Cleanup(func() { *target = old })
}

var serial sync.Mutex

// Serial holds a process-wide lock until the test ends; use it in tests that Swap package
// seams or touch process globals so they never overlap
func Serial(t testing.TB) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
