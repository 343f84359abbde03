package model

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	kit "inspectgrade/internal/platform/testkit"
)

func TestLoader_MissingFileIsAbsent(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "best_model.json"))
	if m := l.Model(); m != nil {
		t.Fatalf("expected nil model, got %T", m)
	}
	if !errors.Is(l.Err(), os.ErrNotExist) {
		t.Fatalf("Err = %v", l.Err())
	}
	info := l.Info()
	if info.Loaded || info.Error == "" || info.Path != l.Path() {
		t.Fatalf("info = %+v", info)
	}
}

func TestLoader_CorruptAndMismatchedAreAbsent(t *testing.T) {
	cases := map[string]string{
		"corrupt.json":  `{"version":`,
		"mismatch.json": `{"version":1,"schema":"raw","kind":"linear","features":["BORO"],"linear":{"intercept":1}}`,
	}
	for name, body := range cases {
		l := NewLoader(kit.WriteFile(t, name, body))
		if l.Model() != nil || l.Err() == nil {
			t.Fatalf("%s: expected absent model with error", name)
		}
	}
}

func TestLoader_LoadsFixtures(t *testing.T) {
	for _, name := range []string{"encoded_linear.json", "raw_tree.yaml"} {
		l := NewLoader(filepath.Join("testdata", name))
		if l.Model() == nil {
			t.Fatalf("%s: not loaded: %v", name, l.Err())
		}
		if info := l.Info(); !info.Loaded || info.Kind == "" || info.LoadedAt.IsZero() {
			t.Fatalf("%s: info = %+v", name, info)
		}
	}
}

func TestLoader_MemoizesAcrossCallsAndGoroutines(t *testing.T) {
	kit.Serial(t)

	fixture, err := os.ReadFile(filepath.Join("testdata", "encoded_linear.json"))
	if err != nil {
		t.Fatal(err)
	}
	var mu sync.Mutex
	reads := 0
	kit.Swap(t, &readFile, func(string) ([]byte, error) {
		mu.Lock()
		reads++
		mu.Unlock()
		return fixture, nil
	})

	l := NewLoader("best_model.json")
	first := l.Model()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Model() != first {
				t.Errorf("different handle returned")
			}
		}()
	}
	wg.Wait()

	if reads != 1 {
		t.Fatalf("artifact read %d times, want 1", reads)
	}
}

func TestLoader_MemoizesAbsence(t *testing.T) {
	kit.Serial(t)

	reads := 0
	kit.Swap(t, &readFile, func(string) ([]byte, error) {
		reads++
		return nil, os.ErrNotExist
	})

	l := NewLoader("best_model.json")
	for i := 0; i < 3; i++ {
		if l.Model() != nil {
			t.Fatalf("expected absent model")
		}
	}
	if reads != 1 {
		t.Fatalf("absent result re-read %d times", reads)
	}
}

func TestStaticProvider(t *testing.T) {
	var p Provider = Static{}
	if p.Model() != nil {
		t.Fatalf("empty Static should be absent")
	}
	if info := (Static{}).Info(); info.Loaded || info.Error == "" {
		t.Fatalf("empty Static info %+v", info)
	}

	info := Static{M: mustLoad(t, "raw_tree.yaml")}.Info()
	if !info.Loaded || info.Schema != "raw" || info.Kind != KindTree || info.Features != 5 {
		t.Fatalf("static info %+v", info)
	}
}
