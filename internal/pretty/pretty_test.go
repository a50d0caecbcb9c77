package pretty

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isEven(v any) bool { return v.(int)%2 == 0 }

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "nil"},
		{"string", "abc", `"abc"`},
		{"bytes", []byte("abc"), `"abc"`},
		{"int", 3, "3"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"slice", []any{1, 2}, "[1 2]"},
		{"type", reflect.TypeOf(""), "string"},
		{"regexp", regexp.MustCompile("[a-z]"), "[a-z]"},
		{"error", errors.New("boom"), "boom"},
		{"nil func", (func(any) bool)(nil), "func(nil)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Value(tt.input))
		})
	}
}

func TestValue_Func(t *testing.T) {
	got := Value(isEven)
	assert.True(t, strings.HasPrefix(got, "func "), got)
	assert.True(t, strings.HasSuffix(got, "pretty.isEven"), got)
}

func TestTree(t *testing.T) {
	got := Tree(map[string]any{"foo": 1, "b": "abcd"})
	assert.Contains(t, got, `"foo"`)
	assert.Contains(t, got, `"abcd"`)
	assert.NotContains(t, got, "\x1b[", "output must not be coloured")
}

func TestTree_Leaves(t *testing.T) {
	got := Tree(map[string]any{
		"type": reflect.TypeOf(""),
		"re":   regexp.MustCompile("[a-z]+"),
		"raw":  []byte("xyz"),
		"seq":  []int{1, 2},
		"none": nil,
	})
	assert.Contains(t, got, `"[a-z]+"`)
	assert.Contains(t, got, `"string"`)
	assert.Contains(t, got, `"xyz"`)
	assert.NotContains(t, got, "Regexp{", "patterns are rendered by their source")
}

func TestPlain(t *testing.T) {
	assert.Equal(t, map[string]any{"a": []any{1, "b"}, "n": nil}, plain(map[string]any{"a": []any{1, []byte("b")}, "n": nil}))
	assert.Equal(t, "[a-z]", plain(regexp.MustCompile("[a-z]")))
	assert.Equal(t, 3, plain(3))
}
