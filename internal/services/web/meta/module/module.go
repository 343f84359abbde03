// Package module wires meta endpoints into the web service using a tiny module
package module

import (
	"net/http"
	"time"

	"inspectgrade/internal/core/version"
	modkit "inspectgrade/internal/modkit"
	"inspectgrade/internal/modkit/httpkit"
	str "inspectgrade/internal/platform/strings"

	metahttp "inspectgrade/internal/services/web/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	// loaders and Static both report Info; anything else is treated as unconfigured
	info, _ := m.deps.Models.(metahttp.ModelInfo)
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Models:      info,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
