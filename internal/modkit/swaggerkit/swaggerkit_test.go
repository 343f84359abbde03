package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "inspectgrade/internal/platform/net/http"
	"inspectgrade/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestDoc_SkeletonAndMutators(t *testing.T) {
	testkit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	Register(nil)
	Register(func(spec map[string]any) {
		AddPath(spec, "/predict/raw", "post", map[string]any{
			"summary": "Predict from raw inputs",
			"responses": map[string]any{
				"200": map[string]any{"description": "OK"},
			},
		})
		AddSchema(spec, "Result", map[string]any{"type": "object"})
	})

	doc := Doc()
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", doc["openapi"])
	}
	paths := doc["paths"].(map[string]any)
	op := paths["/predict/raw"].(map[string]any)["post"].(map[string]any)
	resps := op["responses"].(map[string]any)
	if _, ok := resps["500"]; !ok {
		t.Fatalf("default 500 not injected")
	}
	if _, ok := resps["200"]; !ok {
		t.Fatalf("declared 200 lost")
	}
	sch := doc["components"].(map[string]any)["schemas"].(map[string]any)
	for _, name := range []string{"ErrorResponse", "Result"} {
		if _, ok := sch[name]; !ok {
			t.Fatalf("missing schema %s", name)
		}
	}
}

func TestMount(t *testing.T) {
	testkit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), true)

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rr.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rr.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("missing no-store")
	}

	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rr.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), false)

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
}
