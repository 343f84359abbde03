// Package http provides http transport for predictions
package http

import (
	stdhttp "net/http"

	"inspectgrade/internal/modkit/httpkit"
	"inspectgrade/internal/services/web/predict/domain"
)

// Register mounts predict endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// variant A, full zero-filled vector
	httpkit.PostJSON(r, "/encoded", h.encoded)

	// variant B, five raw keys
	httpkit.PostJSON(r, "/raw", h.raw)

	// form contract of the loaded model
	httpkit.Get(r, "/schema", h.schema)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /predict/encoded Predict predictEncoded
// @Summary Predict a grade from encoded inputs
// @Tags Predict
// @Accept json
// @Produce json
// @Param payload body domain.EncodedInput true "Encoded inputs"
// @Success 200 {object} domain.Result "ok"
// @Failure 422 {object} httpkit.Envelope "schema mismatch"
// @Failure 503 {object} httpkit.Envelope "model not found"
// @Router /predict/encoded [post]
func (h *handlers) encoded(r *stdhttp.Request, in domain.EncodedInput) (any, error) {
	return h.svc.PredictEncoded(r.Context(), in)
}

// swagger:route POST /predict/raw Predict predictRaw
// @Summary Predict a grade from raw inputs
// @Tags Predict
// @Accept json
// @Produce json
// @Param payload body domain.RawInput true "Raw inputs"
// @Success 200 {object} domain.Result "ok, fallback set when the placeholder score was graded"
// @Failure 503 {object} httpkit.Envelope "model not found"
// @Router /predict/raw [post]
func (h *handlers) raw(r *stdhttp.Request, in domain.RawInput) (any, error) {
	return h.svc.PredictRaw(r.Context(), in)
}

// swagger:route GET /predict/schema Predict predictSchema
// @Summary Input contract of the loaded model
// @Tags Predict
// @Produce json
// @Success 200 {object} domain.Form "ok"
// @Failure 503 {object} httpkit.Envelope "model not found"
// @Router /predict/schema [get]
func (h *handlers) schema(r *stdhttp.Request) (any, error) {
	return h.svc.Form(r.Context())
}
