// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"inspectgrade/internal/core/model"
	"inspectgrade/internal/core/version"
	"inspectgrade/internal/modkit/httpkit"
	perr "inspectgrade/internal/platform/errors"
)

// ModelInfo is satisfied by the model loader
type ModelInfo interface {
	model.Provider
	Info() model.Info
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Models      ModelInfo
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/model", h.model)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"inspectgrade-web"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
	Uptime  int64  `json:"uptime"   example:"300"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"model"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"open best_model.json: no such file or directory"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness probe
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := time.Now().UTC()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     now.Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe, fails while no model is loaded
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "model absent"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	check := ReadyCheck{Name: "model", Status: "ok"}
	if h.deps.Models == nil {
		check.Status = "fail"
		check.Error = "no model configured"
	} else if h.deps.Models.Model() == nil {
		check.Status = "fail"
		check.Error = h.deps.Models.Info().Error
	}
	resp := ReadyResponse{
		Status: check.Status,
		Checks: []ReadyCheck{check},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}
	if check.Status != "ok" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: resp}, nil
	}
	return resp, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/model Meta metaModel
// @Summary Model artifact load details
// @Tags Meta
// @Produce json
// @Success 200 {object} model.Info "ok"
// @Failure 404 {object} httpkit.Envelope "no model configured"
// @Router /meta/model [get]
func (h *handlers) model(_ *http.Request) (any, error) {
	if h.deps.Models == nil {
		return nil, perr.NotFoundf("no model configured")
	}
	return h.deps.Models.Info(), nil
}
