// Package logger owns the process zerolog logger and the context fields
// (request_id, run_id) that request and run scoped children carry
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"leetgen/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string // trace..panic, "warning" accepted; unknown means debug
	Format       string // console or json
	Service      string
	Component    string
	Writer       io.Writer // stdout when nil
	WithCaller   bool
	SampleEvery  int // keep 1 in N events when > 1
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw view, which cannot log back into us
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "debug"),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", "leetgen"),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init builds the root logger. Only the first call has any effect
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opt.Writer
		if out == nil {
			out = os.Stdout
		}
		if opt.Format == "console" {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		fields := map[string]any{}
		for k, v := range opt.StaticFields {
			fields[k] = v
		}
		if opt.Service != "" {
			fields["service"] = opt.Service
		}
		if opt.Component != "" {
			fields["component"] = opt.Component
		}

		wc := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp().Fields(fields)
		if opt.WithCaller {
			wc = wc.Caller()
		}
		l := wc.Logger()
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&l)
	})
}

// Get returns the root logger, initialising it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.DebugLevel
	}
	return lvl
}

// Named returns a child logger tagged with component
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey uint8

const (
	requestKey ctxKey = iota
	runKey
)

var ctxFields = []struct {
	key  ctxKey
	name string
}{
	{requestKey, "request_id"},
	{runKey, "run_id"},
}

// WithRequest stores the HTTP request id on ctx; empty ids are ignored
func WithRequest(ctx context.Context, id string) context.Context { return with(ctx, requestKey, id) }

// WithRun stores a run id on ctx (one per service call); empty ids are ignored
func WithRun(ctx context.Context, id string) context.Context { return with(ctx, runKey, id) }

func with(ctx context.Context, k ctxKey, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, k, id)
}

// C returns a child of the root logger carrying whatever ids ctx holds
func C(ctx context.Context) *Logger {
	wc := Get().With()
	for _, f := range ctxFields {
		if id, _ := ctx.Value(f.key).(string); id != "" {
			wc = wc.Str(f.name, id)
		}
	}
	l := wc.Logger()
	return &l
}
