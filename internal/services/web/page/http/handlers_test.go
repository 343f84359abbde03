package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inspectgrade/internal/core/features"
	"inspectgrade/internal/core/grade"
	perr "inspectgrade/internal/platform/errors"
	phttp "inspectgrade/internal/platform/net/http"
	"inspectgrade/internal/platform/testkit"
	"inspectgrade/internal/services/web/predict/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	schema string
	err    error
	score  float64
	raw    domain.RawInput
}

func (f *fakeSvc) Form(context.Context) (domain.Form, error) {
	if f.schema == "" {
		return domain.Form{}, perr.Unavailablef("model not found")
	}
	form, _ := domain.FormFor(f.schema, "linear")
	return form, nil
}

func (f *fakeSvc) result(schema string, decimals int) (domain.Result, error) {
	if f.err != nil {
		return domain.Result{}, f.err
	}
	g := grade.Classify(f.score)
	return domain.Result{Schema: schema, Score: f.score, ScoreText: grade.FormatScore(f.score, decimals), Grade: &g}, nil
}

func (f *fakeSvc) PredictEncoded(context.Context, domain.EncodedInput) (domain.Result, error) {
	return f.result(features.SchemaEncoded, 2)
}

func (f *fakeSvc) PredictRaw(_ context.Context, in domain.RawInput) (domain.Result, error) {
	f.raw = in
	r, err := f.result(features.SchemaRaw, 1)
	r.Name = in.Name
	return r, err
}

func do(t *testing.T, svc domain.ServicePort, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), Deps{Predict: svc, ModelPath: "models/best_model.json"})

	var req *stdhttp.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, req)
	return rr
}

func rawForm() url.Values {
	return url.Values{
		"name":              {"Joe's Pizza"},
		"borough":           {"Brooklyn"},
		"cuisine":           {"Italian"},
		"avg_last_3_scores": {"12"},
		"days_since_last":   {"180"},
		"action":            {"Establishment re-opened by DOHMH. "},
	}
}

func TestIndex_ModelMissing(t *testing.T) {
	t.Parallel()

	rr := do(t, &fakeSvc{}, stdhttp.MethodGet, "/", nil)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	testkit.MustContain(t, body, "was not found")
	testkit.MustContain(t, body, "models/best_model.json")
	testkit.MustNotContain(t, body, "<form")
}

func TestIndex_EncodedForm(t *testing.T) {
	t.Parallel()

	rr := do(t, &fakeSvc{schema: features.SchemaEncoded}, stdhttp.MethodGet, "/", nil)
	body := rr.Body.String()
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Header().Get("Content-Type"), "text/html")
	testkit.MustContain(t, body, `name="violation_code"`)
	testkit.MustContain(t, body, `value="43"`)
	testkit.MustContain(t, body, `max="2000"`)
	testkit.MustContain(t, body, `action="/predict"`)
	testkit.MustNotContain(t, body, `name="borough"`)
}

func TestForm_PostsUnderMountPrefix(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{schema: features.SchemaRaw, score: 9}
	m := chi.NewRouter()
	m.Route("/grades", func(r chi.Router) {
		Register(phttp.AdaptChi(r.(*chi.Mux)), Deps{Predict: svc, Prefix: "/grades"})
	})

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/grades/", nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `action="/grades/predict"`)

	req := httptest.NewRequest(stdhttp.MethodPost, "/grades/predict", strings.NewReader(rawForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = httptest.NewRecorder()
	m.ServeHTTP(rr, req)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("post status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `action="/grades/predict"`)
	testkit.MustContain(t, rr.Body.String(), "Predicted score: 9.0")
}

func TestSubmit_RawSuccess(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{schema: features.SchemaRaw, score: 31.24}
	rr := do(t, svc, stdhttp.MethodPost, "/predict", rawForm())
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body %s", rr.Code, rr.Body.String())
	}
	if svc.raw.Action != "Establishment re-opened by DOHMH. " {
		t.Fatalf("action not passed verbatim: %q", svc.raw.Action)
	}
	body := rr.Body.String()
	testkit.MustContain(t, body, "tone-error")
	testkit.MustContain(t, body, "Predicted score: 31.2")
	testkit.MustContain(t, body, "Needs Improvement")
	testkit.MustContain(t, body, "Joe&#39;s Pizza prediction result")
}

func TestSubmit_ValidationError(t *testing.T) {
	t.Parallel()

	form := rawForm()
	form.Set("days_since_last", "4000")
	rr := do(t, &fakeSvc{schema: features.SchemaRaw}, stdhttp.MethodPost, "/predict", form)
	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	testkit.MustContain(t, body, "Prediction error")
	testkit.MustContain(t, body, `aria-invalid="true"`)
	testkit.MustContain(t, body, `value="4000"`)
}

func TestSubmit_ScoringErrorInline(t *testing.T) {
	t.Parallel()

	svc := &fakeSvc{schema: features.SchemaEncoded, err: perr.SchemaMismatchf("feature names mismatch")}
	form := url.Values{
		"avg_last_3_scores": {"15"}, "days_since_last": {"180"}, "action": {"1"},
		"violation_code": {"43"}, "inspection_month": {"12"}, "inspection_weekday": {"0"},
	}
	rr := do(t, svc, stdhttp.MethodPost, "/predict", form)
	if rr.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	testkit.MustContain(t, body, "feature names mismatch")
	testkit.MustContain(t, body, "exactly match the order")
	testkit.MustNotContain(t, body, `class="result`)
}

func TestSubmit_ModelMissing(t *testing.T) {
	t.Parallel()

	rr := do(t, &fakeSvc{}, stdhttp.MethodPost, "/predict", rawForm())
	if rr.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), "prediction is disabled")
}
