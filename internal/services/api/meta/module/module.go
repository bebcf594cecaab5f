// Package module mounts the meta endpoints: liveness, readiness, build and engine info
package module

import (
	"time"

	"leetgen/internal/core/version"
	"leetgen/internal/modkit"
	"leetgen/internal/modkit/httpkit"
	"leetgen/internal/services/expand/domain"

	metahttp "leetgen/internal/services/api/meta/http"
)

// New builds the meta module at /meta. engine is the leet module's expander;
// readiness checks deps.Pack
func New(deps modkit.Deps, engine domain.ServicePort, opts ...modkit.Option) modkit.Module {
	d := metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   time.Now(),
		Pack:        deps.Pack,
		Engine:      engine,
	}
	base := []modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithRoutes(func(r httpkit.Router) { metahttp.Register(r, d) }),
	}
	return modkit.New(append(base, opts...)...)
}
