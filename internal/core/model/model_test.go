package model

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inspectgrade/internal/core/features"
	perr "inspectgrade/internal/platform/errors"
	kit "inspectgrade/internal/platform/testkit"
)

func mustLoad(t *testing.T, name string) Model {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	a, err := Decode(data, name)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	m, err := Compile(a)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return m
}

func sampleEncoded() *features.Vector {
	return features.AssembleEncoded(features.EncodedInput{
		AvgScore: 15, DaysSinceLast: 180, ActionCode: 1, ViolationCode: 43, Month: 12, Weekday: 0,
	})
}

func sampleRaw(avg, days float64, cuisine string) *features.Vector {
	return features.AssembleRaw(features.RawInput{
		Borough: "Brooklyn", Cuisine: cuisine, AvgScore: avg, DaysSinceLast: days, Action: features.RawActions[2],
	})
}

func TestLinear_PredictsDeterministically(t *testing.T) {
	m := mustLoad(t, "encoded_linear.json")
	if m.Kind() != KindLinear || m.Schema().Name != features.SchemaEncoded {
		t.Fatalf("kind=%s schema=%s", m.Kind(), m.Schema().Name)
	}

	// 2 + 0.8*15 + 0.01*180 + 1.5*1 + 0.05*43 + 0.1*12 - 0.2*0
	got, err := m.Predict(context.Background(), sampleEncoded())
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	kit.MustNear(t, got, 20.65, 1e-9)
}

func TestTree_PredictsLeaves(t *testing.T) {
	m := mustLoad(t, "raw_tree.yaml")
	if m.Kind() != KindTree || m.Schema().Name != features.SchemaRaw {
		t.Fatalf("kind=%s schema=%s", m.Kind(), m.Schema().Name)
	}

	cases := []struct {
		avg, days float64
		want      float64
	}{
		{12, 180, 9.5},
		{13, 5000, 9.5},
		{20, 365, 20},
		{20, 366, 31},
	}
	for _, c := range cases {
		got, err := m.Predict(context.Background(), sampleRaw(c.avg, c.days, "Italian"))
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if got != c.want {
			t.Fatalf("avg=%v days=%v: got %v want %v", c.avg, c.days, got, c.want)
		}
	}
}

func TestPredict_SchemaMismatch(t *testing.T) {
	tree := mustLoad(t, "raw_tree.yaml")
	linear := mustLoad(t, "encoded_linear.json")
	ctx := context.Background()

	// unknown category
	_, err := tree.Predict(ctx, sampleRaw(12, 180, "Thai"))
	if !perr.IsCode(err, perr.ErrorCodeSchemaMismatch) {
		t.Fatalf("unknown category: %v", err)
	}
	if e, _ := perr.As(err); e.Field() != features.KeyCuisine {
		t.Fatalf("field = %q", e.Field())
	}

	// trimmed action string is not the trained category
	v := sampleRaw(12, 180, "Italian")
	v.Set(features.KeyAction, features.Cat(strings.TrimSpace(features.RawActions[2])))
	if _, err := tree.Predict(ctx, v); !perr.IsCode(err, perr.ErrorCodeSchemaMismatch) {
		t.Fatalf("trimmed action: %v", err)
	}

	// wrong layout either way round
	if _, err := linear.Predict(ctx, sampleRaw(12, 180, "Italian")); !perr.IsCode(err, perr.ErrorCodeSchemaMismatch) {
		t.Fatalf("raw into encoded: %v", err)
	}
	if _, err := tree.Predict(ctx, sampleEncoded()); !perr.IsCode(err, perr.ErrorCodeSchemaMismatch) {
		t.Fatalf("encoded into raw: %v", err)
	}
	if _, err := tree.Predict(ctx, nil); !perr.IsCode(err, perr.ErrorCodeSchemaMismatch) {
		t.Fatalf("nil vector: %v", err)
	}

	// strings where the encoded model has no encoder
	enc := sampleEncoded()
	enc.Set(features.KeyBorough, features.Cat("Brooklyn"))
	if _, err := linear.Predict(ctx, enc); !perr.IsCode(err, perr.ErrorCodeSchemaMismatch) {
		t.Fatalf("string into numeric column: %v", err)
	}
}

func TestPredict_CancelledContext(t *testing.T) {
	m := mustLoad(t, "encoded_linear.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Predict(ctx, sampleEncoded()); err == nil {
		t.Fatalf("expected error on cancelled context")
	}
}

func TestCompile_Rejects(t *testing.T) {
	raw := features.Raw.Keys
	cases := []struct {
		name string
		a    Artifact
	}{
		{"version", Artifact{Version: 2, Schema: "raw", Features: raw, Kind: KindLinear, Linear: &linearDoc{}}},
		{"schema", Artifact{Version: 1, Schema: "pickle", Features: raw, Kind: KindLinear, Linear: &linearDoc{}}},
		{"features order", Artifact{Version: 1, Schema: "raw", Features: []string{"ACTION", "BORO", "CUISINE DESCRIPTION", "avg_last_3_scores", "days_since_last"}, Kind: KindLinear, Linear: &linearDoc{}}},
		{"features count", Artifact{Version: 1, Schema: "encoded", Features: raw, Kind: KindLinear, Linear: &linearDoc{}}},
		{"kind", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: "forest"}},
		{"missing body", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: KindTree}},
		{"two bodies", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: KindTree, Tree: &treeDoc{Nodes: []nodeDoc{{Leaf: true}}}, Linear: &linearDoc{}}},
		{"unknown weight", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: KindLinear, Linear: &linearDoc{Weights: map[string]float64{"ZIPCODE": 1}}}},
		{"unknown category column", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: KindLinear, Linear: &linearDoc{}, Categories: map[string]map[string]float64{"NTA": {"x": 1}}}},
		{"empty tree", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: KindTree, Tree: &treeDoc{}}},
		{"tree cycle", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: KindTree, Tree: &treeDoc{Nodes: []nodeDoc{
			{Feature: "days_since_last", Left: 0, Right: 1}, {Leaf: true},
		}}}},
		{"tree unknown feature", Artifact{Version: 1, Schema: "raw", Features: raw, Kind: KindTree, Tree: &treeDoc{Nodes: []nodeDoc{
			{Feature: "Latitude", Left: 1, Right: 2}, {Leaf: true}, {Leaf: true},
		}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Compile(c.a); err == nil {
				t.Fatalf("expected Compile to fail")
			}
		})
	}
}

func TestDecode_FormatsAndStrictness(t *testing.T) {
	if _, err := Decode([]byte(`{"version":1,"bogus":true}`), "m.json"); err == nil {
		t.Fatalf("unknown json field should fail")
	}
	if _, err := Decode([]byte("version: 1\nbogus: true\n"), "m.yml"); err == nil {
		t.Fatalf("unknown yaml field should fail")
	}
	if _, err := Decode([]byte("\x80\x02 pickle bytes"), "best_model.pkl"); err == nil {
		t.Fatalf("pickle bytes should fail")
	}
	a, err := Decode([]byte("version: 1\nschema: raw\nkind: linear\n"), "M.YAML")
	if err != nil || a.Schema != "raw" || a.Kind != KindLinear {
		t.Fatalf("yaml by upper-case ext: %+v %v", a, err)
	}
}
