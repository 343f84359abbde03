package model

import (
	"context"

	"inspectgrade/internal/core/features"
	perr "inspectgrade/internal/platform/errors"
)

// node is a compiled tree node; feature is a schema column index
type node struct {
	feature   int
	threshold float64
	left      int
	right     int
	leaf      bool
	value     float64
}

// Tree is a regression tree; x <= threshold goes left
type Tree struct {
	base
	nodes []node
}

// Kind implements Model
func (m *Tree) Kind() string { return KindTree }

// Predict implements Model
func (m *Tree) Predict(ctx context.Context, v *features.Vector) (float64, error) {
	row, err := m.row(ctx, v)
	if err != nil {
		return 0, err
	}
	idx := 0
	// children always sit after their parent so the walk ends within len(nodes) steps
	for range m.nodes {
		n := m.nodes[idx]
		if n.leaf {
			return n.value, nil
		}
		if row[n.feature] <= n.threshold {
			idx = n.left
		} else {
			idx = n.right
		}
	}
	return 0, perr.Internalf("invalid tree state")
}
