// Package model loads a trained scoring artifact and evaluates it against feature vectors
//
// An artifact is a declarative JSON or YAML document. It names the input schema it was
// trained on, the exact ordered feature list, categorical encodings and either a linear
// or a regression tree body. Checks happen once at load time so scoring only has to
// reject vectors that do not fit
package model

import (
	"context"

	"inspectgrade/internal/core/features"
	perr "inspectgrade/internal/platform/errors"
)

// Model kinds
const (
	KindLinear = "linear"
	KindTree   = "tree"
)

// Model is an immutable, loaded scoring function
type Model interface {
	// Schema is the input contract declared by the artifact
	Schema() features.Schema
	// Kind is KindLinear or KindTree
	Kind() string
	// Predict returns the single score for v
	Predict(ctx context.Context, v *features.Vector) (float64, error)
}

// base carries what every kind shares
type base struct {
	schema features.Schema
	enc    encoder
}

func (b base) Schema() features.Schema { return b.schema }

// row checks v against the schema and returns it as a numeric row in schema order
func (b base) row(ctx context.Context, v *features.Vector) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "prediction cancelled")
	}
	if v == nil {
		return nil, perr.SchemaMismatchf("no feature vector")
	}
	if keys := v.Keys(); !b.schema.Matches(keys) {
		return nil, perr.SchemaMismatchf("feature names should match those passed during fit: got %d columns, want %d for schema %s",
			len(keys), len(b.schema.Keys), b.schema.Name)
	}
	out := make([]float64, len(b.schema.Keys))
	for i, k := range b.schema.Keys {
		val, _ := v.Get(k)
		x, err := b.enc.encode(k, val)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// encoder maps categorical strings to the numbers the model was fit on
type encoder map[string]map[string]float64

func (e encoder) encode(key string, v features.Value) (float64, error) {
	if v.Kind == features.Number {
		return v.Num, nil
	}
	codes, ok := e[key]
	if !ok {
		return 0, perr.WithField(perr.SchemaMismatchf("could not convert string to float: %q", v.Str), key)
	}
	x, ok := codes[v.Str]
	if !ok {
		return 0, perr.WithField(perr.SchemaMismatchf("found unknown categories [%q] in column %q during transform", v.Str, key), key)
	}
	return x, nil
}
