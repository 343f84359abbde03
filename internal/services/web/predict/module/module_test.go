package module

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inspectgrade/internal/core/model"
	modkit "inspectgrade/internal/modkit"
	mod "inspectgrade/internal/modkit/module"
	"inspectgrade/internal/platform/config"
	phttp "inspectgrade/internal/platform/net/http"
	"inspectgrade/internal/services/web/predict/domain"

	"github.com/go-chi/chi/v5"
)

func TestNew_DefaultsAndPorts(t *testing.T) {
	t.Parallel()

	m := New(modkit.Deps{Cfg: config.New(), Models: model.Static{}})
	if m.Name() != "predict" {
		t.Fatalf("name = %q", m.Name())
	}
	p := mod.MustPortsOf[domain.ServicePort](m)
	if p == nil {
		t.Fatalf("service port missing")
	}
}

func TestMountRoutes_PrefixAndMiddleware(t *testing.T) {
	t.Parallel()

	var seen bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = true
			next.ServeHTTP(w, r)
		})
	}
	m := New(
		modkit.Deps{Cfg: config.New(), Models: model.Static{}},
		modkit.WithPrefix("scores/"),
		modkit.WithMiddlewares(mw),
	)

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/scores/raw", strings.NewReader(
		`{"borough":"Bronx","cuisine":"Other","avg_last_3_scores":1,"days_since_last":1,"action":"Establishment re-closed by DOHMH. "}`)))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d body %s", rr.Code, rr.Body.String())
	}
	if !seen {
		t.Fatalf("module middleware not applied")
	}
}
