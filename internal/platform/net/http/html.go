package http

import (
	"bytes"
	"html/template"
	stdhttp "net/http"

	"inspectgrade/internal/platform/logger"
	pnet "inspectgrade/internal/platform/net"
)

// HTML renders the named template into a buffer and writes it with status
// A render failure never leaks a half-written page; it answers 500 instead
func HTML(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		logger.C(r.Context()).Error().Err(err).Str("template", name).Msg("template render failed")
		stdhttp.Error(w, "internal server error", stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if id := pnet.RequestID(r.Context()); id != "" {
		w.Header().Set("X-Request-ID", id)
	}
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
