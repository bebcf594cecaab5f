// Package http serves the meta endpoints
package http

import (
	"net/http"
	"time"

	"leetgen/internal/core/dictpack"
	"leetgen/internal/core/version"
	"leetgen/internal/modkit/httpkit"
	"leetgen/internal/services/expand/domain"
)

// Deps are what the meta handlers report on
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Pack        *dictpack.Pack     // checked by /ready
	Engine      domain.ServicePort // described by /engine; nil reports an empty engine
}

// Register mounts health, ready, version, service and engine
func Register(r httpkit.Router, d Deps) {
	h := handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/engine", h.engine)
}

type handlers struct{ d Deps }

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"leetgen-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Now     string `json:"now" example:"2026-10-19T13:05:00Z"`
}

// ReadyCheck is one readiness check; Status is ok or fail
type ReadyCheck struct {
	Name   string `json:"name" example:"dictionary"`
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse is ok only when every check is
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now" example:"2026-10-19T13:05:00Z"`
}

// ServiceResponse is the service name and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name" example:"leetgen-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime" example:"300"`
}

// EngineResponse names the dictionary the expander runs on, plus the build
type EngineResponse struct {
	Pack        string            `json:"pack" example:"default"`
	PackVersion int               `json:"pack_version" example:"1"`
	Keys        int               `json:"keys" example:"6"`
	Build       version.BuildInfo `json:"build"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.d.ServiceName, Started: stamp(h.d.StartedAt), Now: stamp(time.Now())}, nil
}

// @Summary Readiness; fails while no valid dictionary pack is loaded
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h handlers) ready(*http.Request) (any, error) {
	c := ReadyCheck{Name: "dictionary", Status: "ok"}
	if h.d.Pack == nil {
		c.Status, c.Error = "fail", "no dictionary pack loaded"
	} else if err := h.d.Pack.Dict.Validate(); err != nil {
		c.Status, c.Error = "fail", err.Error()
	}
	return ReadyResponse{Status: c.Status, Checks: []ReadyCheck{c}, Now: stamp(time.Now())}, nil
}

// @Summary Build and version
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.d.ServiceName,
		Started: stamp(h.d.StartedAt),
		Uptime:  int64(time.Since(h.d.StartedAt) / time.Second),
	}, nil
}

// @Summary Dictionary pack behind the expander, and the build
// @Tags Meta
// @Produce json
// @Success 200 {object} EngineResponse
// @Router /meta/engine [get]
func (h handlers) engine(r *http.Request) (any, error) {
	out := EngineResponse{Build: version.Info()}
	if h.d.Engine != nil {
		info := h.d.Engine.Dictionary(r.Context())
		out.Pack, out.PackVersion, out.Keys = info.Name, info.Version, len(info.Keys)
	}
	return out, nil
}
