package predicate

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"

	"github.com/erraggy/jsonmatch/matcherrors"
)

// Predicate is a custom spec value. Match reports whether v satisfies it; a
// returned error means "not satisfied" and is logged by the matcher.
type Predicate interface {
	Match(v any) (bool, error)
}

// Result is the outcome of evaluating a predicate or pattern.
type Result struct {
	// OK is true when the predicate was satisfied
	OK bool
	// Err holds the fault, if evaluation failed
	Err error
}

// Satisfied reports whether evaluation succeeded and the predicate held.
func (r Result) Satisfied() bool {
	return r.OK && r.Err == nil
}

var errorType = reflect.TypeFor[error]()

// IsCallable reports whether v is a predicate spec value: a Predicate or a
// func with one parameter returning bool or (bool, error).
func IsCallable(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case Predicate, func(any) bool, func(any) (bool, error):
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil() && isPredicateFunc(rv.Type())
}

func isPredicateFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.IsVariadic() {
		return false
	}
	switch t.NumOut() {
	case 1:
		return t.Out(0).Kind() == reflect.Bool
	case 2:
		return t.Out(0).Kind() == reflect.Bool && t.Out(1) == errorType
	default:
		return false
	}
}

// Eval applies the predicate p to v. Panics and returned errors are
// converted into a Result carrying a *matcherrors.PredicateError.
func Eval(p any, v any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: &matcherrors.PredicateError{
				Predicate: Describe(p),
				Value:     v,
				Panic:     r,
			}}
		}
	}()

	ok, err := call(p, v)
	if err != nil {
		var pe *matcherrors.PredicateError
		if !errors.As(err, &pe) {
			err = &matcherrors.PredicateError{Predicate: Describe(p), Value: v, Cause: err}
		}
		return Result{Err: err}
	}
	return Result{OK: ok}
}

func call(p any, v any) (bool, error) {
	switch fn := p.(type) {
	case Predicate:
		return fn.Match(v)
	case func(any) bool:
		return fn(v), nil
	case func(any) (bool, error):
		return fn(v)
	}

	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Func || rv.IsNil() || !isPredicateFunc(rv.Type()) {
		return false, fmt.Errorf("%T is not a predicate", p)
	}

	in := rv.Type().In(0)
	var arg reflect.Value
	switch {
	case v == nil && canBeNil(in):
		arg = reflect.Zero(in)
	case v != nil && reflect.TypeOf(v).AssignableTo(in):
		arg = reflect.ValueOf(v)
	default:
		return false, fmt.Errorf("cannot use %T as %s argument", v, in)
	}

	out := rv.Call([]reflect.Value{arg})
	if len(out) == 2 && !out[1].IsNil() {
		return false, out[1].Interface().(error)
	}
	return out[0].Bool(), nil
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// Describe returns a short human-readable name for a predicate.
func Describe(p any) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	return fmt.Sprintf("%T", p)
}
