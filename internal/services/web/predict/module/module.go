// Package module wires predictions into the web service using modkit
package module

import (
	"net/http"

	modkit "inspectgrade/internal/modkit"
	"inspectgrade/internal/modkit/httpkit"
	"inspectgrade/internal/modkit/swaggerkit"
	str "inspectgrade/internal/platform/strings"
	predicthttp "inspectgrade/internal/services/web/predict/http"
	predictsvc "inspectgrade/internal/services/web/predict/service"
)

// Module implements the predict module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	svc predictsvc.Service
}

// New constructs the predict module
// service options come from PREDICT_* under deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("predict"), modkit.WithPrefix("/predict")}, opts...)...)

	svc := predictsvc.New(deps.Models, predictsvc.FromConfig(deps.Cfg.Prefix("PREDICT_")))

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		predicthttp.Register(rr, m.svc)
	})
	if m.swaggerOn {
		swaggerkit.Register(predicthttp.Doc(m.Prefix()))
	}
	m.deps.Logger(m.Name()).Debug().Str("prefix", m.Prefix()).Msg("module mounted")
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
