package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "inspectgrade/internal/platform/errors"
	pnet "inspectgrade/internal/platform/net"
	"inspectgrade/internal/platform/net/middleware"
	"inspectgrade/internal/platform/testkit"
)

func TestRecoverJSON_TurnsPanicIntoEnvelope(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("model exploded")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict/encoded", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-panic"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") != "rid-panic" {
		t.Fatalf("request id not mirrored")
	}
	var body struct {
		StatusCode int            `json:"status_code"`
		Code       perr.ErrorCode `json:"code"`
		Error      string         `json:"error"`
		RequestID  string         `json:"request_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if body.StatusCode != 500 || body.Code != perr.ErrorCodePanic || body.RequestID != "rid-panic" {
		t.Fatalf("unexpected body %+v", body)
	}
	testkit.MustContain(t, body.Error, "/api/v1/predict/encoded")
}

func TestRecoverJSON_ReraisesAbort(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	testkit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}
