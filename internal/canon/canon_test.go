package canon

import (
	"encoding/json"
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	type name string

	tests := []struct {
		name     string
		a, b     any
		expected bool
	}{
		{"same ints", 1, 1, true},
		{"int and float", 1, 1.0, true},
		{"int and float differ", 1, 1.5, false},
		{"int and uint", int64(3), uint8(3), true},
		{"negative int and uint", -1, uint(1), false},
		{"json number", json.Number("42"), 42, true},
		{"json float number", json.Number("0.5"), float32(0.5), true},
		{"nan never equal", math.NaN(), math.NaN(), false},
		{"number and string", 1, "1", false},
		{"strings", "abc", "abc", true},
		{"string and bytes", "abc", []byte("abc"), true},
		{"named string", name("abc"), "abc", true},
		{"different strings", "abc", "abd", false},
		{"bools", true, true, true},
		{"bool and int", true, 1, false},
		{"nils", nil, nil, true},
		{"nil and value", nil, 0, false},
		{"slices deep", []any{1, "a"}, []any{1, "a"}, true},
		{"maps deep", map[string]any{"a": 1}, map[string]any{"a": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
			assert.Equal(t, tt.expected, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestCompare_AcrossKinds(t *testing.T) {
	ordered := []any{
		nil,
		false,
		true,
		-5,
		0.5,
		uint(7),
		"a",
		"b",
		[]any{1},
		[]any{1, 2},
		map[string]any{"a": 1},
		regexp.MustCompile("x"),
	}

	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Equal(t, -1, got, "Compare(%v, %v)", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "Compare(%v, %v)", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got, "Compare(%v, %v)", ordered[i], ordered[j])
			}
		}
	}
}

func TestCompare_Mappings(t *testing.T) {
	a := map[string]any{"a": 1}
	b := map[string]any{"a": 2}
	c := map[string]any{"a": 1, "b": 1}

	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, -1, Compare(a, c), "fewer keys sort first")
	assert.Equal(t, 0, Compare(a, map[string]any{"a": 1.0}))
}

func TestSort(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		src := []any{3, 1, 2}
		got := Sort(src)
		assert.Equal(t, []any{1, 2, 3}, got)
		assert.Equal(t, []any{3, 1, 2}, src, "source must not be reordered")
	})

	t.Run("mixed kinds", func(t *testing.T) {
		got := Sort([]any{"b", 2, nil, "a", true})
		assert.Equal(t, []any{nil, true, 2, "a", "b"}, got)
	})

	t.Run("stable for equal elements", func(t *testing.T) {
		got := Sort([]any{2.0, 1, 2})
		assert.Equal(t, []any{1, 2.0, 2}, got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Sort(nil))
	})
}

func TestSortedKeys(t *testing.T) {
	m := map[any]any{"b": 1, 2: 1, "a": 1, 0: 1}
	assert.Equal(t, []any{0, 2, "a", "b"}, SortedKeys(m))
}
