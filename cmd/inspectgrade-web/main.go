// @title         Inspection Grade API
// @version       0.1.0
// @description   Predicts a restaurant's next inspection score and letter grade

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"inspectgrade/internal/core/model"
	"inspectgrade/internal/platform/config"
	"inspectgrade/internal/platform/logger"
	"inspectgrade/internal/platform/metrics"
	phttp "inspectgrade/internal/platform/net/http"

	"inspectgrade/internal/services/web"
)

func main() {
	// .env must be merged before the first config or logger read
	dotenvErr := config.LoadDotenv()

	root := config.New()
	webCfg := root.Prefix("INSPECTGRADE_WEB_") // http and surface toggles
	modelCfg := root.Prefix("MODEL_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Named("main")
	if dotenvErr != nil {
		l.Warn().Err(dotenvErr).Msg("ignoring unreadable .env")
	}

	// load the artifact once; an absent model keeps the page up with prediction disabled
	path := modelCfg.MayString("PATH", "best_model.json")
	loader := model.NewLoader(path)
	metrics.Init()
	if m := loader.Model(); m != nil {
		metrics.SetModelLoaded(m.Schema().Name, true)
	} else {
		metrics.SetModelLoaded("none", false)
		l.Warn().Str("path", path).Err(loader.Err()).Msg("starting without a model")
	}

	// http server (reads INSPECTGRADE_WEB_ADDR etc)
	srv := phttp.NewServer(webCfg)

	web.Mount(
		srv.Router(),
		web.Options{
			Config:         root,
			Logger:         logger.Get(),
			Models:         loader,
			ModelPath:      path,
			EnableSwagger:  webCfg.MayBool("SWAGGER", true),
			EnableProfiler: webCfg.MayBool("PROFILER", false),
			CORSOrigins:    webCfg.MayCSV("CORS_ORIGINS", nil),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		stop()
		os.Exit(1)
	}
	l.Info().Msg("bye")
}
