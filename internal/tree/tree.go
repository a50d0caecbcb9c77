// Package tree provides reflection-based views over semi-structured values.
//
// Specs and candidates are plain Go values: maps (usually map[string]any),
// slices or arrays, and scalars. The helpers here let the matching engine
// treat any map type as a mapping and any slice or array type as a sequence
// without requiring callers to convert their data first.
//
// Byte slices are text, not sequences.
package tree

import (
	"reflect"
)

var bytesType = reflect.TypeOf([]byte(nil))

// IsMapping reports whether v is mapping-shaped.
func IsMapping(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case map[string]any:
		return true
	}
	return reflect.TypeOf(v).Kind() == reflect.Map
}

// IsSequence reports whether v is sequence-shaped. Byte slices are not.
func IsSequence(v any) bool {
	switch v.(type) {
	case nil, []byte:
		return false
	case []any:
		return true
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return !isBytes(t)
	default:
		return false
	}
}

// Mapping returns the entries of a mapping-shaped value keyed by the map's
// own keys. The returned map is a fresh copy and may be modified.
func Mapping(v any) (map[any]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		out := make(map[any]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[any]any:
		out := make(map[any]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	out := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().Interface()] = iter.Value().Interface()
	}
	return out, true
}

// Sequence returns the elements of a sequence-shaped value. The returned
// slice is a fresh copy and may be reordered.
func Sequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		out := make([]any, len(s))
		copy(out, s)
		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if isBytes(rv.Type()) {
			return nil, false
		}
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Indexed converts a sequence into a positional mapping keyed by int index.
func Indexed(seq []any) map[any]any {
	out := make(map[any]any, len(seq))
	for i, v := range seq {
		out[i] = v
	}
	return out
}

// IsText reports whether v is text-like: any string kind (including named
// string types) or a byte slice.
func IsText(v any) bool {
	_, ok := Text(v)
	return ok
}

// Text returns v interpreted as text.
func Text(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	case []byte:
		return string(s), true
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), true
	case rv.Kind() == reflect.Slice && isBytes(rv.Type()):
		return string(rv.Bytes()), true
	default:
		return "", false
	}
}

// Len returns the length of text, sequences and mappings.
func Len(v any) (int, bool) {
	if s, ok := Text(v); ok {
		return len([]rune(s)), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// TypeOf returns the dynamic type of v, or nil for a nil interface.
func TypeOf(v any) reflect.Type {
	return reflect.TypeOf(v)
}

func isBytes(t reflect.Type) bool {
	return t == bytesType || (t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8)
}
