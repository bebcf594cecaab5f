// Package modkit is how the API is assembled: each service is a Module that owns a
// route prefix and exposes a port set other modules can wire against
package modkit

import (
	"net/http"

	"leetgen/internal/core/dictpack"
	"leetgen/internal/modkit/httpkit"
	"leetgen/internal/platform/config"
	str "leetgen/internal/platform/strings"
)

// Module is one mountable slice of the API
type Module interface {
	Name() string
	Prefix() string
	Mount(r httpkit.Router)
	Ports() any
}

// Deps is what the composition root hands every module
type Deps struct {
	Cfg  config.Conf
	Pack *dictpack.Pack // resolved once so every module sees the same dictionary
}

// Option configures New
type Option func(*module)

// WithName names the module in logs and panics
func WithName(name string) Option { return func(m *module) { m.name = name } }

// WithPrefix sets the route prefix, e.g. "/leet"
func WithPrefix(prefix string) Option { return func(m *module) { m.prefix = prefix } }

// WithMiddlewares runs mw, in order, in front of the module's routes only
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(m *module) { m.mw = append(m.mw, mw...) }
}

// WithRoutes adds a route registration; registrations run in the order given
func WithRoutes(fn func(httpkit.Router)) Option {
	return func(m *module) { m.routes = append(m.routes, fn) }
}

// WithPorts sets the port set returned by Ports
func WithPorts(p any) Option { return func(m *module) { m.ports = p } }

type module struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	routes []func(httpkit.Router)
	ports  any
}

// New builds a Module. Later options override earlier ones, so a service can set
// defaults and still let callers rename or re-prefix it.
// Panics when no name or prefix ends up set
func New(opts ...Option) Module {
	m := &module{}
	for _, o := range opts {
		o(m)
	}
	m.name = str.MustString(m.name, "module name")
	m.prefix = str.MustPrefix(m.prefix)
	return m
}

func (m *module) Name() string   { return m.name }
func (m *module) Prefix() string { return m.prefix }
func (m *module) Ports() any     { return m.ports }

// Mount registers the module's routes under its prefix
func (m *module) Mount(r httpkit.Router) {
	r.Route(m.prefix, func(sub httpkit.Router) {
		sub.Use(m.mw...)
		for _, fn := range m.routes {
			fn(sub)
		}
	})
}
