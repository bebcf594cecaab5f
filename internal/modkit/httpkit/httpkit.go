// Package httpkit is what service modules mount routes with: the router alias,
// JSON route helpers, the versioned API scope and the middleware stacks
package httpkit

import (
	"net/http"
	"strings"

	phttp "leetgen/internal/platform/net/http"
)

// Router is the platform router
type Router = phttp.Router

// Get mounts a route that takes no body and answers with an envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBody(h))
}

// PostJSON mounts a route whose body is bound and validated into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSON(h))
}

// MountAPI scopes mount under /api/{version} behind mw, e.g.
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(), func(api httpkit.Router) {
//		leet.Mount(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.Trim(version, "/"), func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
