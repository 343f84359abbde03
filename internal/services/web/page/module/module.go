// Package module wires the form page into the web service
package module

import (
	"net/http"

	modkit "inspectgrade/internal/modkit"
	"inspectgrade/internal/modkit/httpkit"
	mod "inspectgrade/internal/modkit/module"
	str "inspectgrade/internal/platform/strings"
	pagehttp "inspectgrade/internal/services/web/page/http"
	"inspectgrade/internal/services/web/predict/domain"
)

// Ports are what the page needs from other modules
type Ports struct {
	Predict domain.ServicePort
}

// Module implements the page module
// it mounts at the router root unless WithPrefix says otherwise
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	predict   domain.ServicePort
	modelPath string
}

// New constructs the page module; WithPorts must carry a Ports value
func New(deps modkit.Deps, modelPath string, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("page")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Predict == nil {
		panic("page: module requires Ports with a predict service")
	}
	return &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		predict:   p.Predict,
		modelPath: modelPath,
	}
}

// FromPredict builds the page ports out of the predict module
func FromPredict(predict mod.Module) modkit.Option {
	return modkit.WithPorts(Ports{Predict: mod.MustPortsOf[domain.ServicePort](predict)})
}

// MountRoutes mounts the page routes
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		pagehttp.Register(rr, pagehttp.Deps{Predict: m.predict, ModelPath: m.modelPath, Prefix: m.prefix})
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports returns nil, the page exposes nothing
func (m *Module) Ports() any { return nil }
