package modkit

import (
	"net/http"
	"strings"
)

// Option configures a module at construction
type Option func(*Built)

// Built is what a module constructor reads after applying its options
type Built struct {
	Name   string
	Prefix string // "" or a clean "/segment" path
	Mw     []func(http.Handler) http.Handler
	// Ports carries another module's ports, the importing module owns the concrete type
	Ports     any
	SwaggerOn bool
}

// Build applies opts in order
// the middleware slice is copied so callers can reuse theirs
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// WithName sets a module name used in logs
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts a module under a path prefix, "predict/" and "/predict" are the same
func WithPrefix(prefix string) Option {
	return func(b *Built) {
		p := strings.Trim(prefix, "/")
		if p == "" {
			b.Prefix = ""
			return
		}
		b.Prefix = "/" + p
	}
}

// WithMiddlewares appends per module middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it depends on
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithSwagger lets a module publish its routes in the API doc
func WithSwagger(enabled bool) Option {
	return func(b *Built) { b.SwaggerOn = enabled }
}
