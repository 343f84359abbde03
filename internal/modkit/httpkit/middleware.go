package httpkit

import (
	"net/http"
	"time"

	"inspectgrade/internal/platform/metrics"
	"inspectgrade/internal/platform/net/middleware"
)

// BaseStack is applied once at the root router, before any route is mounted
// correlation first so recovery and the access log see the request id
func BaseStack() []func(http.Handler) http.Handler {
	return append(middleware.Defaults(),
		middleware.Heartbeat("/healthz"),
		middleware.RecoverJSON,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Second, Skip: []string{"/metrics"}}),
		metrics.Middleware,
	)
}

// CommonStack returns a baseline per scope middleware slice for JSON APIs
// origins restricts CORS, none means any origin
func CommonStack(origins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins}),
		middleware.StripSlashes(),
	}
}
