package predicate

import (
	"reflect"
	"slices"
	"strings"

	"github.com/erraggy/jsonmatch/internal/tree"
)

var (
	// Text is the text type. A type set containing it accepts every text-like value.
	Text = reflect.TypeFor[string]()

	// MappingType is the type reported when a mapping was expected.
	MappingType = reflect.TypeFor[map[string]any]()

	// SequenceType is the type reported when a sequence was expected.
	SequenceType = reflect.TypeFor[[]any]()
)

// TypeOf returns the reflect.Type of T, for use as a spec value.
//
//	spec := map[string]any{"id": predicate.TypeOf[float64]()}
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// TypeMatch is satisfied by a value whose type is one of Types.
type TypeMatch struct {
	// Types is deduplicated and sorted by name
	Types []reflect.Type
}

// NewTypeMatch creates a TypeMatch for the given types. Nil types are ignored.
func NewTypeMatch(types ...reflect.Type) *TypeMatch {
	out := make([]reflect.Type, 0, len(types))
	for _, t := range types {
		if t != nil && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return &TypeMatch{Types: out}
}

// IsMatch reports whether v is an instance of one of the types.
func (m *TypeMatch) IsMatch(v any) bool {
	if m == nil || v == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	for _, t := range m.Types {
		switch {
		case vt == t:
			return true
		case t.Kind() == reflect.Interface && vt.Implements(t):
			return true
		case t == Text && tree.IsText(v):
			return true
		}
	}
	return false
}

// Equal reports whether both type sets hold the same types.
func (m *TypeMatch) Equal(other *TypeMatch) bool {
	if m == nil || other == nil {
		return m == other
	}
	return slices.Equal(m.Types, other.Types)
}

// String returns a deterministic representation, e.g. "TypeMatch(int, string)".
func (m *TypeMatch) String() string {
	if m == nil {
		return "TypeMatch()"
	}
	names := make([]string, len(m.Types))
	for i, t := range m.Types {
		names[i] = t.String()
	}
	return "TypeMatch(" + strings.Join(names, ", ") + ")"
}

// AsTypeMatch converts a type-set spec value into a TypeMatch.
func AsTypeMatch(v any) (*TypeMatch, bool) {
	switch t := v.(type) {
	case *TypeMatch:
		return t, t != nil
	case reflect.Type:
		return NewTypeMatch(t), t != nil
	default:
		return nil, false
	}
}

// IsTypeSet reports whether v is a type-set spec value.
func IsTypeSet(v any) bool {
	_, ok := AsTypeMatch(v)
	return ok
}
