package testkit

import (
	"sync"
	"testing"
)

// one lock for every test that touches process wide state
var seamMu sync.Mutex

// Swap points target at replacement until the test ends and returns the old value
func Swap[T any](t *testing.T, target *T, replacement T) T {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
	return orig
}

// Serial holds the seam lock for the rest of the test
// use it around package level seams and global registries such as the swagger doc
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// Env sets prefix+key for each entry until the test ends
func Env(t *testing.T, prefix string, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(prefix+k, v)
	}
}
