// Package web mounts the grade predictor: form page, JSON API, meta, metrics and docs
package web

import (
	"net/http"

	"inspectgrade/internal/core/model"
	"inspectgrade/internal/platform/config"
	"inspectgrade/internal/platform/logger"
	"inspectgrade/internal/platform/metrics"
	phttp "inspectgrade/internal/platform/net/http"

	"inspectgrade/internal/modkit"
	"inspectgrade/internal/modkit/httpkit"
	"inspectgrade/internal/modkit/module"
	"inspectgrade/internal/modkit/swaggerkit"

	metamod "inspectgrade/internal/services/web/meta/module"
	pagemod "inspectgrade/internal/services/web/page/module"
	predictmod "inspectgrade/internal/services/web/predict/module"

	"github.com/go-chi/chi/v5"
)

// Options are the web service options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Models         model.Provider
	ModelPath      string
	EnableSwagger  bool
	EnableProfiler bool
	// CORSOrigins limits cross origin API calls, empty allows any origin
	CORSOrigins []string
}

// Mount mounts the web service onto the given router
// r must not have routes yet since the base middleware stack is installed here
func Mount(r phttp.Router, opt Options) {
	r.Use(httpkit.BaseStack()...)

	// shared deps for modules
	deps := modkit.Deps{
		Log:    opt.Logger,
		Cfg:    opt.Config,
		Models: opt.Models,
	}

	predict := predictmod.New(deps, modkit.WithSwagger(opt.EnableSwagger))
	page := pagemod.New(deps, opt.ModelPath, pagemod.FromPredict(predict))

	mods := []module.Module{
		metamod.New(deps),
		predict,
	}

	// html form at the root
	page.MountRoutes(r)

	r.Handle("/metrics", metrics.Handler())
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.CORSOrigins...), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	logRoutes(r, deps.Logger("web"))
}

func logRoutes(r phttp.Router, log *logger.Logger) {
	routes, ok := r.Mux().(chi.Routes)
	if !ok {
		return
	}
	_ = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		log.Debug().Str("method", method).Str("route", route).Msg("route mounted")
		return nil
	})
}
