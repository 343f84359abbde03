package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"inspectgrade/internal/core/features"

	"gopkg.in/yaml.v3"
)

// ArtifactVersion is the only artifact format version understood
const ArtifactVersion = 1

type linearDoc struct {
	Intercept float64            `json:"intercept" yaml:"intercept"`
	Weights   map[string]float64 `json:"weights" yaml:"weights"`
}

type nodeDoc struct {
	Feature   string  `json:"feature,omitempty" yaml:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Left      int     `json:"left,omitempty" yaml:"left,omitempty"`
	Right     int     `json:"right,omitempty" yaml:"right,omitempty"`
	Leaf      bool    `json:"leaf,omitempty" yaml:"leaf,omitempty"`
	Value     float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

type treeDoc struct {
	Nodes []nodeDoc `json:"nodes" yaml:"nodes"`
}

// Artifact is the on-disk document
type Artifact struct {
	Version    int                           `json:"version" yaml:"version"`
	Name       string                        `json:"name,omitempty" yaml:"name,omitempty"`
	Schema     string                        `json:"schema" yaml:"schema"`
	Features   []string                      `json:"features" yaml:"features"`
	Kind       string                        `json:"kind" yaml:"kind"`
	Categories map[string]map[string]float64 `json:"categories,omitempty" yaml:"categories,omitempty"`
	Linear     *linearDoc                    `json:"linear,omitempty" yaml:"linear,omitempty"`
	Tree       *treeDoc                      `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// Decode parses an artifact; YAML when name ends in .yaml or .yml, JSON otherwise
// Unknown fields are rejected in both formats
func Decode(data []byte, name string) (Artifact, error) {
	var a Artifact
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("model: parse yaml artifact: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("model: parse json artifact: %w", err)
		}
	}
	return a, nil
}

// Compile checks the artifact and builds the Model it describes
func Compile(a Artifact) (Model, error) {
	if a.Version != ArtifactVersion {
		return nil, fmt.Errorf("model: unsupported artifact version %d", a.Version)
	}
	schema, ok := features.SchemaByName(a.Schema)
	if !ok {
		return nil, fmt.Errorf("model: unknown schema %q", a.Schema)
	}
	if !schema.Matches(a.Features) {
		return nil, fmt.Errorf("model: declared features (%d) do not match the %s schema (%d)",
			len(a.Features), schema.Name, len(schema.Keys))
	}
	for k := range a.Categories {
		if !schema.Has(k) {
			return nil, fmt.Errorf("model: categories for unknown feature %q", k)
		}
	}
	b := base{schema: schema, enc: encoder(a.Categories)}

	switch a.Kind {
	case KindLinear:
		if a.Linear == nil || a.Tree != nil {
			return nil, fmt.Errorf("model: kind linear needs exactly a linear body")
		}
		return compileLinear(b, *a.Linear)
	case KindTree:
		if a.Tree == nil || a.Linear != nil {
			return nil, fmt.Errorf("model: kind tree needs exactly a tree body")
		}
		return compileTree(b, *a.Tree)
	default:
		return nil, fmt.Errorf("model: unsupported kind %q", a.Kind)
	}
}

func compileLinear(b base, doc linearDoc) (*Linear, error) {
	w := make([]float64, len(b.schema.Keys))
	for k, x := range doc.Weights {
		i := slices.Index(b.schema.Keys, k)
		if i < 0 {
			return nil, fmt.Errorf("model: weight for unknown feature %q", k)
		}
		w[i] = x
	}
	return &Linear{base: b, intercept: doc.Intercept, weights: w}, nil
}

func compileTree(b base, doc treeDoc) (*Tree, error) {
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("model: tree has no nodes")
	}
	nodes := make([]node, len(doc.Nodes))
	for i, nd := range doc.Nodes {
		if nd.Leaf {
			nodes[i] = node{leaf: true, value: nd.Value}
			continue
		}
		f := slices.Index(b.schema.Keys, nd.Feature)
		if f < 0 {
			return nil, fmt.Errorf("model: node %d splits on unknown feature %q", i, nd.Feature)
		}
		for _, c := range []int{nd.Left, nd.Right} {
			if c <= i || c >= len(doc.Nodes) {
				return nil, fmt.Errorf("model: node %d has child %d out of order or range", i, c)
			}
		}
		nodes[i] = node{feature: f, threshold: nd.Threshold, left: nd.Left, right: nd.Right}
	}
	return &Tree{base: b, nodes: nodes}, nil
}
