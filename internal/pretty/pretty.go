// Package pretty renders trees and values for diagnostics.
package pretty

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"

	"github.com/k0kubun/pp/v3"
)

var anyType = reflect.TypeFor[any]()

// Tree pretty-prints a whole tree over multiple lines, without colours.
// Leaves that are not plain data, such as types, patterns and predicates,
// are shown by their Value rendering.
func Tree(v any) string {
	// PrettyPrinter carries configuration state, so each call builds its own.
	p := pp.New()
	p.SetColoringEnabled(false)
	p.WithLineInfo = false
	return p.Sprint(plain(v))
}

func plain(v any) any {
	switch x := v.(type) {
	case nil, bool, string:
		return v
	case []byte:
		return string(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v
	case reflect.Map:
		out := reflect.MakeMapWithSize(reflect.MapOf(rv.Type().Key(), anyType), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			val := reflect.ValueOf(plain(iter.Value().Interface()))
			if !val.IsValid() {
				val = reflect.Zero(anyType)
			}
			out.SetMapIndex(iter.Key(), val)
		}
		return out.Interface()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = plain(rv.Index(i).Interface())
		}
		return out
	default:
		return Value(v)
	}
}

// Value renders a single value on one line. Stringers use their String
// method, funcs their symbol name and text is quoted.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case []byte:
		return strconv.Quote(string(x))
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		if rv.IsNil() {
			return "func(nil)"
		}
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return "func " + fn.Name()
		}
		return fmt.Sprintf("%T", v)
	}
	return fmt.Sprintf("%v", v)
}
