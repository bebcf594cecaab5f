// Package module wires leet expansion into the API
package module

import (
	"leetgen/internal/core/dictpack"
	"leetgen/internal/modkit"
	"leetgen/internal/modkit/httpkit"
	"leetgen/internal/platform/net/middleware"

	"leetgen/internal/services/expand/domain"
	expandhttp "leetgen/internal/services/expand/http"
	expandsvc "leetgen/internal/services/expand/service"
)

// Ports is what the leet module offers other modules, via modkit.PortsOf
type Ports struct {
	Expander domain.ServicePort
}

// New builds the leet module, mounted at /leet unless mopts say otherwise.
// It expands against deps.Pack, or resolves opts.DictPath when deps.Pack is nil
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) (modkit.Module, error) {
	pack := deps.Pack
	if pack == nil {
		p, err := dictpack.Resolve(opts.DictPath, opts.NoDefault)
		if err != nil {
			return nil, err
		}
		pack = p
	}

	svc := expandsvc.New(pack, opts.service())

	base := []modkit.Option{
		modkit.WithName("leet"),
		modkit.WithPrefix("/leet"),
		modkit.WithPorts(Ports{Expander: svc}),
		modkit.WithRoutes(func(r httpkit.Router) { expandhttp.Register(r, svc) }),
	}
	if opts.MaxInFlight > 0 {
		base = append(base, modkit.WithMiddlewares(middleware.Throttle(opts.MaxInFlight)))
	}
	return modkit.New(append(base, mopts...)...), nil
}
