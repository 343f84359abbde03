// Package features holds the model input contract: ordered feature vectors,
// the named schemas a model may be trained against and the assemblers that
// turn form input into a vector
package features

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells numeric and categorical values apart
type Kind uint8

const (
	// Number is a float64 value
	Number Kind = iota
	// Category is a raw categorical string
	Category
)

// Value is a single scalar cell of a vector
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Num builds a numeric value
func Num(f float64) Value { return Value{Kind: Number, Num: f} }

// Cat builds a categorical value; s is kept verbatim
func Cat(s string) Value { return Value{Kind: Category, Str: s} }

// IsZero reports whether v is numeric zero
func (v Value) IsZero() bool { return v.Kind == Number && v.Num == 0 }

// Any returns the Go value for JSON or templates
func (v Value) Any() any {
	if v.Kind == Category {
		return v.Str
	}
	return v.Num
}

// String renders v for logs and cache keys
func (v Value) String() string {
	if v.Kind == Category {
		return strconv.Quote(v.Str)
	}
	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}

// Vector is an ordered mapping from feature key to value
// Order is insertion order and is what the model sees
type Vector struct {
	keys []string
	vals map[string]Value
}

// NewVector returns an empty vector with room for n keys
func NewVector(n int) *Vector {
	return &Vector{keys: make([]string, 0, n), vals: make(map[string]Value, n)}
}

// Zero returns a vector over keys with every value numeric zero
func Zero(keys []string) *Vector {
	v := NewVector(len(keys))
	for _, k := range keys {
		v.Set(k, Num(0))
	}
	return v
}

// Set writes key; a new key is appended, an existing one keeps its position
func (v *Vector) Set(key string, val Value) {
	if _, ok := v.vals[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.vals[key] = val
}

// Get returns the value for key
func (v *Vector) Get(key string) (Value, bool) {
	val, ok := v.vals[key]
	return val, ok
}

// Keys returns a copy of the key order
func (v *Vector) Keys() []string { return append([]string(nil), v.keys...) }

// Len is the number of keys
func (v *Vector) Len() int { return len(v.keys) }

// Map returns key -> plain Go value, handy for JSON
func (v *Vector) Map() map[string]any {
	out := make(map[string]any, len(v.keys))
	for _, k := range v.keys {
		out[k] = v.vals[k].Any()
	}
	return out
}

// Fingerprint is a stable text form of the ordered contents used as a cache key
func (v *Vector) Fingerprint() string {
	var b strings.Builder
	for i, k := range v.keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte('=')
		b.WriteString(v.vals[k].String())
	}
	return b.String()
}

// String implements fmt.Stringer
func (v *Vector) String() string { return fmt.Sprintf("Vector(%d){%s}", v.Len(), v.Fingerprint()) }
