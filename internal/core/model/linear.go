package model

import (
	"context"

	"inspectgrade/internal/core/features"
)

// Linear scores intercept + sum(weight * x) over the schema columns
type Linear struct {
	base
	intercept float64
	weights   []float64 // schema order, zero for unweighted columns
}

// Kind implements Model
func (m *Linear) Kind() string { return KindLinear }

// Predict implements Model
func (m *Linear) Predict(ctx context.Context, v *features.Vector) (float64, error) {
	row, err := m.row(ctx, v)
	if err != nil {
		return 0, err
	}
	y := m.intercept
	for i, x := range row {
		y += m.weights[i] * x
	}
	return y, nil
}
