package predicate

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/erraggy/jsonmatch/internal/tree"
)

// Func is a named predicate. The name is what reports show for it.
type Func struct {
	name string
	fn   func(any) (bool, error)
}

// Fn wraps fn as a named predicate.
//
//	spec := map[string]any{"g": predicate.Fn("len==3", func(v any) bool { ... })}
func Fn(name string, fn func(any) bool) *Func {
	return &Func{name: name, fn: func(v any) (bool, error) { return fn(v), nil }}
}

// FnErr wraps fn as a named predicate whose errors count as non-matches.
func FnErr(name string, fn func(any) (bool, error)) *Func {
	return &Func{name: name, fn: fn}
}

// Match implements Predicate.
func (f *Func) Match(v any) (bool, error) {
	return f.fn(v)
}

// String implements fmt.Stringer.
func (f *Func) String() string {
	return f.name
}

// Len is satisfied by text, sequences and mappings of length n.
// Text length is counted in runes.
func Len(n int) *Func {
	return FnErr(fmt.Sprintf("Len(%d)", n), func(v any) (bool, error) {
		l, ok := tree.Len(v)
		if !ok {
			return false, fmt.Errorf("value of type %T has no length", v)
		}
		return l == n, nil
	})
}

// EqualFold is satisfied by text equal to s under Unicode case folding.
func EqualFold(s string) *Func {
	// Casers are stateful, so each evaluation gets its own.
	want := cases.Fold().String(s)
	return Fn(fmt.Sprintf("EqualFold(%q)", s), func(v any) bool {
		got, ok := tree.Text(v)
		return ok && cases.Fold().String(got) == want
	})
}
