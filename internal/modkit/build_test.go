package modkit

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"inspectgrade/internal/core/model"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.SwaggerOn || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
}

func TestBuild_WithOptionsAndCopySemantics(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr {
		return reflect.ValueOf(f).Pointer()
	}
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	type ports struct{ Schema string }
	p := ports{Schema: "raw"}

	b := Build(
		WithName("predict"),
		WithPrefix("/predict"),
		WithMiddlewares(mid...),
		WithPorts(p),
		WithSwagger(true),
	)

	if b.Name != "predict" || b.Prefix != "/predict" || !b.SwaggerOn {
		t.Fatalf("unexpected build %+v", b)
	}
	if got, ok := b.Ports.(ports); !ok || got != p {
		t.Fatalf("Ports mismatch after Build")
	}
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("Mw contents not preserved")
	}

	// mutate the source slice after Build; Built.Mw must not change
	mid[0] = func(next http.Handler) http.Handler { return next }
	if fnPtr(b.Mw[0]) != fnPtr(mwA) {
		t.Fatalf("Built.Mw changed after source slice mutation")
	}
}

func TestWithPrefix_Normalizes(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":          "",
		"/":         "",
		"predict":   "/predict",
		"/predict/": "/predict",
		"/api/meta": "/api/meta",
	} {
		if got := Build(WithPrefix(in)).Prefix; got != want {
			t.Fatalf("WithPrefix(%q) = %q want %q", in, got, want)
		}
	}
}

func TestWithMiddlewares_AccumulatesInOrder(t *testing.T) {
	t.Parallel()

	var seen []string
	mw := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = append(seen, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	b := Build(WithMiddlewares(mw("a"), mw("b")), WithMiddlewares(mw("c")))

	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(b.Mw) - 1; i >= 0; i-- {
		h = b.Mw[i](h)
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !reflect.DeepEqual(seen, []string{"a", "b", "c"}) {
		t.Fatalf("order = %v", seen)
	}
}

func TestDeps_Logger(t *testing.T) {
	t.Parallel()

	d := Deps{Models: model.Static{}}
	if d.Logger("predict") == nil {
		t.Fatalf("expected fallback logger")
	}
	if d.Models.Model() != nil {
		t.Fatalf("static provider should be absent")
	}
}
