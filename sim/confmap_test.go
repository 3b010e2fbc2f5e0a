package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigMapInt_CandidateOrder(t *testing.T) {
	m := ConfigMap{"b": 2, "c": 3}
	// First present candidate wins; precedence is the key list order.
	assert.Equal(t, 2, m.Int(0, "a", "b", "c"))
	assert.Equal(t, 3, m.Int(0, "c", "b"))
	assert.Equal(t, 9, m.Int(9, "missing"))
}

func TestConfigMapCoercion(t *testing.T) {
	// YAML decoding produces int, float64, and strings interchangeably.
	m := ConfigMap{
		"as_int":    42,
		"as_int64":  int64(43),
		"as_float":  44.0,
		"as_string": "45",
		"as_bool":   true,
		"bad":       []any{1},
	}
	assert.Equal(t, 42, m.Int(0, "as_int"))
	assert.Equal(t, 43, m.Int(0, "as_int64"))
	assert.Equal(t, 44, m.Int(0, "as_float"))
	assert.Equal(t, 45, m.Int(0, "as_string"))
	assert.Equal(t, 1, m.Int(0, "as_bool"))
	// Unconvertible values fall through to the default.
	assert.Equal(t, 7, m.Int(7, "bad"))

	assert.Equal(t, 44.0, m.Float(0, "as_float"))
	assert.Equal(t, 42.0, m.Float(0, "as_int"))
	assert.Equal(t, 45.0, m.Float(0, "as_string"))
}

func TestConfigMapString(t *testing.T) {
	m := ConfigMap{"pattern": "all_reduce", "num": 3}
	assert.Equal(t, "all_reduce", m.String("all_to_all", "pattern"))
	// Non-string values fall through to the default.
	assert.Equal(t, "dflt", m.String("dflt", "num"))
	assert.Equal(t, "dflt", m.String("dflt", "missing"))
}

func TestConfigMapHas(t *testing.T) {
	m := ConfigMap{"x": 1}
	assert.True(t, m.Has("y", "x"))
	assert.False(t, m.Has("y", "z"))
}
