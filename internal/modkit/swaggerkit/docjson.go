package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"

	"inspectgrade/internal/core/version"
)

// SpecMutator lets modules add paths or schemas to the doc before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// Register adds a spec mutator
// modules call this while mounting so only mounted routes are documented
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops every registered mutator
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Doc builds a fresh document from the skeleton and the registered mutators
func Doc() map[string]any {
	bi := version.Info()
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       bi.Service,
			"version":     bi.Version,
			"description": "Restaurant inspection grade predictor",
		},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   map[string]any{},
	}
	ensureErrorResponseDefinition(spec)

	mu.RLock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.RUnlock()
	for _, m := range ms {
		m(spec)
	}

	addDefaultError(spec)
	return spec
}

// AddPath registers one operation under paths[path][method]
func AddPath(spec map[string]any, path, method string, op map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	node, ok := paths[path].(map[string]any)
	if !ok {
		node = map[string]any{}
		paths[path] = node
	}
	node[method] = op
}

// AddSchema registers a named component schema
func AddSchema(spec map[string]any, name string, schema map[string]any) {
	schemas(spec)[name] = schema
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Doc())
	}
}

func schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	s, ok := comps["schemas"].(map[string]any)
	if !ok {
		s = map[string]any{}
		comps["schemas"] = s
	}
	return s
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	s := schemas(spec)
	if _, ok := s["ErrorResponse"]; ok {
		return
	}
	s["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultError walks every operation and injects a 500 response if absent
func addDefaultError(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses["500"]; !exists {
				responses["500"] = errResp
			}
		}
	}
}
