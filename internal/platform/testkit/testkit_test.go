package testkit

import (
	"os"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "grade A score 12.00"
	MustContain(t, haystack, "grade A")
	MustNotContain(t, haystack, "grade C")
}

func TestMustNear(t *testing.T) {
	t.Parallel()

	MustNear(t, 0.1+0.2, 0.3, 1e-9)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	p := WriteFile(t, "best_model.json", `{"version":1}`)
	b, err := os.ReadFile(p)
	if err != nil || string(b) != `{"version":1}` {
		t.Fatalf("read back %q, %v", b, err)
	}
}
