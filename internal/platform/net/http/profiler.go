package http

import (
	"net"
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes pprof under prefix+"/pprof/" when enabled
// only loopback callers are served, everyone else gets a 404
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := loopbackOnly(stdhttp.StripPrefix(prefix, mw.Profiler()))
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}

func loopbackOnly(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		host, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			host = req.RemoteAddr
		}
		if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
			stdhttp.NotFound(w, req)
			return
		}
		next.ServeHTTP(w, req)
	})
}
