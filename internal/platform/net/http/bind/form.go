package bind

import (
	"errors"
	"math"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"

	perr "inspectgrade/internal/platform/errors"

	"github.com/go-playground/form/v4"
)

// FormOptions controls form parsing
type FormOptions struct {
	MaxBytes int64 // default 64KB
}

// newFormDecoder decodes only `form` tagged fields and refuses non finite floats
func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("form")
	d.SetMode(form.ModeExplicit)
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		x, err := finiteFloat(vals[0], 64)
		return x, err
	}, float64(0))
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		x, err := finiteFloat(vals[0], 32)
		return float32(x), err
	}, float32(0))
	return d
}

// blank input is treated as missing, like the built in numeric decoding
func finiteFloat(s string, bits int) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, nil
	}
	x, err := strconv.ParseFloat(t, bits)
	if err != nil {
		return 0, perr.Validationf("%q is not a number", s)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, perr.Validationf("%q is not a finite number", s)
	}
	return x, nil
}

// ParseForm decodes an urlencoded or query form into T using `form:"name"` tags,
// then validates it like ParseJSON
// missing fields keep their zero value, mark them `validate:"required"` to reject that
// string values are kept verbatim
func ParseForm[T any](r *http.Request, opts ...FormOptions) (T, error) {
	var zero T
	if k := reflect.TypeFor[T]().Kind(); k != reflect.Struct {
		return zero, perr.Internalf("bind: form target must be a struct, got %s", k)
	}
	o := FormOptions{MaxBytes: 64 << 10}
	if len(opts) > 0 && opts[0].MaxBytes > 0 {
		o = opts[0]
	}
	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	}
	if err := r.ParseForm(); err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeValidation, "invalid form")
	}

	var dst T
	if err := Get().Forms.Decode(&dst, r.Form); err != nil {
		return zero, formError(err)
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// formError reports the first failing field, in name order so the result is stable
func formError(err error) error {
	var derrs form.DecodeErrors
	if !errors.As(err, &derrs) || len(derrs) == 0 {
		return perr.Wrap(err, perr.ErrorCodeValidation, "invalid form")
	}
	names := make([]string, 0, len(derrs))
	for name := range derrs {
		names = append(names, name)
	}
	slices.Sort(names)
	name := names[0]
	if _, ok := perr.As(derrs[name]); ok {
		return perr.WithField(derrs[name], name)
	}
	return perr.WithField(perr.Validationf("%s has an invalid value", name), name)
}
