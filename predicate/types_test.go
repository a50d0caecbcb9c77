package predicate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

type named struct{ name string }

func (n named) String() string { return n.name }

func TestNewTypeMatch(t *testing.T) {
	t.Run("sorted and deduplicated", func(t *testing.T) {
		m := NewTypeMatch(TypeOf[string](), TypeOf[int](), TypeOf[string](), nil)
		require.Len(t, m.Types, 2)
		assert.Equal(t, TypeOf[int](), m.Types[0])
		assert.Equal(t, TypeOf[string](), m.Types[1])
	})

	t.Run("string is deterministic", func(t *testing.T) {
		a := NewTypeMatch(TypeOf[string](), TypeOf[float64]())
		b := NewTypeMatch(TypeOf[float64](), TypeOf[string]())
		assert.Equal(t, "TypeMatch(float64, string)", a.String())
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "TypeMatch()", NewTypeMatch().String())
		assert.Equal(t, "TypeMatch()", (*TypeMatch)(nil).String())
	})
}

func TestTypeMatch_Equal(t *testing.T) {
	a := NewTypeMatch(TypeOf[string](), TypeOf[int]())
	b := NewTypeMatch(TypeOf[int](), TypeOf[string]())
	c := NewTypeMatch(TypeOf[int]())

	assert.True(t, a.Equal(b), "order must not matter")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*TypeMatch)(nil).Equal(nil))
	assert.Equal(t, a, b, "testify equality must agree with Equal")
}

func TestTypeMatch_IsMatch(t *testing.T) {
	tests := []struct {
		name     string
		match    *TypeMatch
		value    any
		expected bool
	}{
		{"exact type", NewTypeMatch(TypeOf[int]()), 3, true},
		{"wrong type", NewTypeMatch(TypeOf[int]()), 3.0, false},
		{"one of several", NewTypeMatch(TypeOf[int](), TypeOf[bool]()), true, true},
		{"text accepts string", NewTypeMatch(Text), "hello", true},
		{"text accepts named string", NewTypeMatch(Text), label("hello"), true},
		{"text accepts bytes", NewTypeMatch(Text), []byte("hello"), true},
		{"text accepts raw json", NewTypeMatch(Text), json.RawMessage(`"x"`), true},
		{"text rejects number", NewTypeMatch(Text), 2, false},
		{"named string exact only", NewTypeMatch(TypeOf[label]()), "hello", false},
		{"interface implemented", NewTypeMatch(TypeOf[fmt.Stringer]()), named{"x"}, true},
		{"interface not implemented", NewTypeMatch(TypeOf[fmt.Stringer]()), 1, false},
		{"nil never matches", NewTypeMatch(TypeOf[any]()), nil, false},
		{"any matches values", NewTypeMatch(TypeOf[any]()), 1, true},
		{"slice type", NewTypeMatch(SequenceType), []any{1}, true},
		{"mapping type", NewTypeMatch(MappingType), map[string]any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.match.IsMatch(tt.value))
		})
	}

	assert.False(t, (*TypeMatch)(nil).IsMatch(1))
}

func TestAsTypeMatch(t *testing.T) {
	m, ok := AsTypeMatch(reflect.TypeOf(""))
	require.True(t, ok)
	assert.Equal(t, NewTypeMatch(Text), m)

	tm := NewTypeMatch(TypeOf[int]())
	m, ok = AsTypeMatch(tm)
	require.True(t, ok)
	assert.Same(t, tm, m)

	_, ok = AsTypeMatch("string")
	assert.False(t, ok)
	_, ok = AsTypeMatch((*TypeMatch)(nil))
	assert.False(t, ok)

	assert.True(t, IsTypeSet(Text))
	assert.False(t, IsTypeSet(nil))
}

func TestMissingKey(t *testing.T) {
	assert.Equal(t, Missing, MissingKey{})
	assert.Equal(t, "<MissingKey>", Missing.String())
	assert.NotEqual(t, any(Missing), any(nil))
}
