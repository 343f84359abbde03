// Package http serves the prediction form page
package http

import (
	"embed"
	"html/template"
	stdhttp "net/http"

	"inspectgrade/internal/core/features"
	"inspectgrade/internal/core/version"
	"inspectgrade/internal/modkit/httpkit"
	perr "inspectgrade/internal/platform/errors"
	"inspectgrade/internal/platform/logger"
	"inspectgrade/internal/platform/net/http/bind"
	"inspectgrade/internal/services/web/predict/domain"
)

// Title is the page heading
const Title = "NYC Restaurant Inspection Grade Prediction"

//go:embed templates/*.html
var templatesFS embed.FS

var tmpl = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

// Deps are the handler dependencies
type Deps struct {
	Predict   domain.ServicePort
	ModelPath string
	Prefix    string // mount prefix, "" at the router root
}

// Register mounts the page routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	r.Get("/", h.index)
	r.Post("/predict", h.submit)
}

type handlers struct{ deps Deps }

type pageData struct {
	Title     string
	Action    string
	Missing   bool
	ModelPath string
	Form      domain.Form
	Values    map[string]string
	Result    *domain.Result
	Error     string
	Field     string
	Build     version.BuildInfo
}

func (h *handlers) page() pageData {
	return pageData{Title: Title, Action: h.deps.Prefix + "/predict", ModelPath: h.deps.ModelPath, Values: map[string]string{}, Build: version.Info()}
}

// form loads the contract of the loaded model, flagging the page when there is none
func (h *handlers) form(r *stdhttp.Request, d *pageData) bool {
	f, err := h.deps.Predict.Form(r.Context())
	if err != nil {
		d.Missing = perr.IsCode(err, perr.ErrorCodeUnavailable)
		if !d.Missing {
			d.Error = err.Error()
		}
		return false
	}
	d.Form = f
	for _, fld := range f.Fields {
		d.Values[fld.Name] = fld.Default
	}
	return true
}

func (h *handlers) index(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	d := h.page()
	status := stdhttp.StatusOK
	if !h.form(r, &d) && !d.Missing {
		status = stdhttp.StatusInternalServerError
	}
	httpkit.HTML(w, r, status, tmpl, "index", d)
}

func (h *handlers) submit(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	d := h.page()
	if !h.form(r, &d) {
		status := stdhttp.StatusServiceUnavailable
		if !d.Missing {
			status = stdhttp.StatusInternalServerError
		}
		httpkit.HTML(w, r, status, tmpl, "index", d)
		return
	}

	var (
		res domain.Result
		err error
	)
	switch d.Form.Schema {
	case features.SchemaEncoded:
		var in domain.EncodedInput
		if in, err = bind.ParseForm[domain.EncodedInput](r); err == nil {
			res, err = h.deps.Predict.PredictEncoded(r.Context(), in)
		}
	case features.SchemaRaw:
		var in domain.RawInput
		if in, err = bind.ParseForm[domain.RawInput](r); err == nil {
			res, err = h.deps.Predict.PredictRaw(r.Context(), in)
		}
	}

	// echo what was submitted so the form keeps its state
	for name := range d.Values {
		if vals, ok := r.Form[name]; ok && len(vals) > 0 {
			d.Values[name] = vals[0]
		}
	}

	status := stdhttp.StatusOK
	switch {
	case err != nil && perr.IsCode(err, perr.ErrorCodeValidation):
		wire := perr.WireFrom(err)
		d.Field, d.Error = wire.Field, wire.Message
		status = stdhttp.StatusBadRequest
	case err != nil:
		d.Error = err.Error()
		status = perr.HTTPStatus(err)
		logger.C(r.Context()).Warn().Err(err).Stringer("code", perr.CodeOf(err)).Str("schema", d.Form.Schema).Msg("page prediction failed")
	default:
		d.Result = &res
		d.Error = res.Error
	}
	httpkit.HTML(w, r, status, tmpl, "index", d)
}
