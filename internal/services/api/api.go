// Package api composes the HTTP API: edge middleware, docs, profiler and the
// versioned modules under /api/v1
package api

import (
	"leetgen/internal/core/dictpack"
	"leetgen/internal/modkit"
	"leetgen/internal/modkit/httpkit"
	"leetgen/internal/modkit/swaggerkit"
	"leetgen/internal/platform/config"
	phttp "leetgen/internal/platform/net/http"
	"leetgen/internal/services/expand/domain"

	metamod "leetgen/internal/services/api/meta/module"
	expandmod "leetgen/internal/services/expand/module"
)

// Options configure Mount
type Options struct {
	Config         config.Conf    // root view; the leet module reads CORE_EXPAND_* under it
	Pack           *dictpack.Pack // nil resolves CORE_EXPAND_DICT / CORE_EXPAND_NO_DEFAULT
	MaxInFlight    int            // global concurrent request cap, 0 for none
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount registers everything on r, which must not have routes yet, and returns the
// modules in mount order. Fails only when the dictionary pack cannot be resolved
func Mount(r phttp.Router, opt Options) ([]modkit.Module, error) {
	expandOpts := expandmod.FromConfig(opt.Config)

	pack := opt.Pack
	if pack == nil {
		p, err := dictpack.Resolve(expandOpts.DictPath, expandOpts.NoDefault)
		if err != nil {
			return nil, err
		}
		pack = p
	}
	deps := modkit.Deps{Cfg: opt.Config, Pack: pack}

	leet, err := expandmod.New(deps, expandOpts)
	if err != nil {
		return nil, err
	}
	mods := []modkit.Module{
		metamod.New(deps, modkit.MustPortsOf[domain.ServicePort](leet)),
		leet,
	}

	r.Use(httpkit.Edge(opt.MaxInFlight)...)
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.Mount(api)
		}
	})
	return mods, nil
}
