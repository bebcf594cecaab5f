// Package http provides http transport for expand
package http

import (
	stdhttp "net/http"

	"leetgen/internal/modkit/httpkit"
	"leetgen/internal/services/expand/domain"
	svc "leetgen/internal/services/expand/service"
)

// Register mounts expand endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ExpandInput](r, "/expand", h.expand)
	httpkit.PostJSON[domain.ExpandInput](r, "/count", h.count)
	httpkit.Get(r, "/dictionary", h.dictionary)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /leet/expand Leet leetExpand
// @Summary Expand words into every leetspeak variant
// @Tags Leet
// @Accept json
// @Produce json
// @Param payload body domain.ExpandInput true "Words and dictionary overrides"
// @Success 200 {object} domain.ExpandResult "ok"
// @Router /leet/expand [post]
func (h *handlers) expand(r *stdhttp.Request, in domain.ExpandInput) (any, error) {
	return h.svc.Expand(r.Context(), in)
}

// swagger:route POST /leet/count Leet leetCount
// @Summary Count variants without building them
// @Tags Leet
// @Accept json
// @Produce json
// @Param payload body domain.ExpandInput true "Words and dictionary overrides"
// @Success 200 {object} domain.CountResult "ok"
// @Router /leet/count [post]
func (h *handlers) count(r *stdhttp.Request, in domain.ExpandInput) (any, error) {
	return h.svc.Count(r.Context(), in)
}

// swagger:route GET /leet/dictionary Leet leetDictionary
// @Summary Loaded dictionary pack
// @Tags Leet
// @Produce json
// @Success 200 {object} domain.DictionaryInfo "ok"
// @Router /leet/dictionary [get]
func (h *handlers) dictionary(r *stdhttp.Request) (any, error) {
	return h.svc.Dictionary(r.Context()), nil
}
