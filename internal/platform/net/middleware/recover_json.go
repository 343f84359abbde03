package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	perr "inspectgrade/internal/platform/errors"
	"inspectgrade/internal/platform/logger"
	pnet "inspectgrade/internal/platform/net"
	phttp "inspectgrade/internal/platform/net/http"
)

// RecoverJSON turns a panic into the standard 500 error envelope
// http.ErrAbortHandler is re-raised so net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			log := logger.C(r.Context())
			if log == nil {
				log = logger.Named("http")
			}
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.PanicErrf("internal error while handling %s %s", r.Method, r.URL.Path))
		}()
		next.ServeHTTP(w, r)
	})
}
