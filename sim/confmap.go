// ConfigMap is the loosely-typed mapping layer sub-configurations arrive
// in (scenario YAML decodes to map[string]any). Field lookups take an
// ordered list of candidate keys so legacy-name precedence is data, not
// scattered conditionals.

package sim

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// ConfigMap is a string-keyed loose mapping with tolerant typed accessors.
type ConfigMap map[string]any

// coerceNumber converts the dynamic values YAML/JSON decoding produces
// into the requested numeric type. Unconvertible values yield (0, false).
func coerceNumber[T constraints.Integer | constraints.Float](v any) (T, bool) {
	switch x := v.(type) {
	case int:
		return T(x), true
	case int64:
		return T(x), true
	case uint64:
		return T(x), true
	case float32:
		return T(x), true
	case float64:
		return T(x), true
	case bool:
		if x {
			return T(1), true
		}
		return T(0), true
	case string:
		if i, err := strconv.ParseInt(x, 10, 64); err == nil {
			return T(i), true
		}
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return T(f), true
		}
	}
	var zero T
	return zero, false
}

// Int returns the first candidate key that holds a number, or def.
func (m ConfigMap) Int(def int, keys ...string) int {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if n, ok := coerceNumber[int](v); ok {
				return n
			}
		}
	}
	return def
}

// Float returns the first candidate key that holds a number, or def.
func (m ConfigMap) Float(def float64, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if n, ok := coerceNumber[float64](v); ok {
				return n
			}
		}
	}
	return def
}

// String returns the first candidate key that holds a string, or def.
func (m ConfigMap) String(def string, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return def
}

// Has reports whether any candidate key is present.
func (m ConfigMap) Has(keys ...string) bool {
	for _, key := range keys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}
