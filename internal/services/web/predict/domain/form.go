package domain

import (
	"slices"
	"strconv"

	"inspectgrade/internal/core/features"
)

// Display precision per schema
const (
	EncodedDecimals = 2
	RawDecimals     = 1
)

func bound(v float64) *float64 { return &v }

func number(key string, lo, hi float64, def string) Field {
	return Field{Name: key, Label: features.Label(key), Kind: "number", Min: bound(lo), Max: bound(hi), Step: 1, Default: def}
}

func choices(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

// EncodedFields is the encoded form with its defaults
func EncodedFields() []Field {
	actions := make([]Option, 0, len(features.ActionCodes))
	for _, code := range features.ActionCodes {
		label := strconv.Itoa(code)
		if txt := features.ActionText(code); txt != "" {
			label += ": " + txt
		}
		actions = append(actions, Option{Value: strconv.Itoa(code), Label: label})
	}
	violation := Field{
		Name: "violation_code", Label: "Violation Code (encoded index)", Kind: "number", Step: 1, Default: "43",
		Help: "Encoded index of VIOLATION CODE.",
	}
	return []Field{
		number("avg_last_3_scores", 0, 100, "15"),
		number("days_since_last", 0, 2000, "180"),
		{Name: "action", Label: "Action Code (encoded index)", Kind: "choice", Default: "1", Options: actions},
		violation,
		number("inspection_month", 1, 12, "12"),
		{
			Name: "inspection_weekday", Label: "Inspection Weekday", Kind: "number",
			Min: bound(0), Max: bound(6), Step: 1, Default: "0", Help: "0 is Monday, 6 is Sunday.",
		},
	}
}

// RawFields is the raw form with its defaults
func RawFields() []Field {
	return []Field{
		{Name: "name", Label: "Restaurant Name", Kind: "text", Help: "Example: Joe's Pizza"},
		{Name: "borough", Label: "Borough", Kind: "choice", Default: features.Boroughs[0], Options: choices(features.Boroughs)},
		{Name: "cuisine", Label: "Cuisine", Kind: "choice", Default: features.Cuisines[0], Options: choices(features.Cuisines)},
		number("avg_last_3_scores", 0, 100, "12"),
		number("days_since_last", 0, 3650, "180"),
		{Name: "action", Label: "Action", Kind: "choice", Default: features.RawActions[0], Options: choices(features.RawActions)},
	}
}

// FormFor returns the form contract for a schema name
func FormFor(schema, kind string) (Form, bool) {
	switch schema {
	case features.SchemaEncoded:
		return Form{
			Schema: schema, ModelKind: kind, Features: slices.Clone(features.Encoded.Keys),
			Overridden: features.EncodedOverrides(), Fields: EncodedFields(), Decimals: EncodedDecimals,
		}, true
	case features.SchemaRaw:
		return Form{
			Schema: schema, ModelKind: kind, Features: slices.Clone(features.Raw.Keys),
			Fields: RawFields(), Decimals: RawDecimals,
		}, true
	}
	return Form{}, false
}
