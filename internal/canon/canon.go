// Package canon defines the natural ordering and value equality used when
// comparing semi-structured values.
//
// The ordering is total across kinds so that mixed sequences can be sorted
// deterministically:
//
//	nil < bool < number < text < sequence < mapping < other
//
// Numbers compare by value regardless of their Go type, so int(1), float64(1)
// and json.Number("1") are all equal. Text compares across string kinds and
// byte slices.
package canon

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/erraggy/jsonmatch/internal/tree"
)

type rank int

const (
	rankNil rank = iota
	rankBool
	rankNumber
	rankText
	rankSequence
	rankMapping
	rankOther
)

type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
)

type number struct {
	kind numKind
	i    int64
	u    uint64
	f    float64
}

func (n number) float() float64 {
	switch n.kind {
	case numInt:
		return float64(n.i)
	case numUint:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n number) isNaN() bool {
	return n.kind == numFloat && math.IsNaN(n.f)
}

// asNumber reports v as a number if it is any Go numeric kind or a
// json.Number that parses.
func asNumber(v any) (number, bool) {
	switch x := v.(type) {
	case nil, bool:
		return number{}, false
	case int:
		return number{kind: numInt, i: int64(x)}, true
	case int64:
		return number{kind: numInt, i: x}, true
	case float64:
		return number{kind: numFloat, f: x}, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return number{kind: numInt, i: i}, true
		}
		if f, err := x.Float64(); err == nil {
			return number{kind: numFloat, f: f}, true
		}
		return number{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: numInt, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: numUint, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: numFloat, f: rv.Float()}, true
	default:
		return number{}, false
	}
}

func compareNumbers(a, b number) int {
	switch {
	case a.kind == numInt && b.kind == numInt:
		return cmp.Compare(a.i, b.i)
	case a.kind == numUint && b.kind == numUint:
		return cmp.Compare(a.u, b.u)
	case a.kind == numInt && b.kind == numUint:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.kind == numUint && b.kind == numInt:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	default:
		return cmp.Compare(a.float(), b.float())
	}
}

func rankOf(v any) rank {
	if v == nil {
		return rankNil
	}
	if _, ok := v.(bool); ok {
		return rankBool
	}
	if reflect.TypeOf(v).Kind() == reflect.Bool {
		return rankBool
	}
	if _, ok := asNumber(v); ok {
		return rankNumber
	}
	switch {
	case tree.IsText(v):
		return rankText
	case tree.IsSequence(v):
		return rankSequence
	case tree.IsMapping(v):
		return rankMapping
	default:
		return rankOther
	}
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b in the natural ordering.
func Compare(a, b any) int {
	ra, rb := rankOf(a), rankOf(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankNil:
		return 0
	case rankBool:
		ba, bb := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	case rankNumber:
		na, _ := asNumber(a)
		nb, _ := asNumber(b)
		return compareNumbers(na, nb)
	case rankText:
		sa, _ := tree.Text(a)
		sb, _ := tree.Text(b)
		return cmp.Compare(sa, sb)
	case rankSequence:
		sa, _ := tree.Sequence(a)
		sb, _ := tree.Sequence(b)
		return slices.CompareFunc(sa, sb, Compare)
	case rankMapping:
		return compareMappings(a, b)
	default:
		ta, tb := reflect.TypeOf(a).String(), reflect.TypeOf(b).String()
		if c := cmp.Compare(ta, tb); c != 0 {
			return c
		}
		return cmp.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
	}
}

func compareMappings(a, b any) int {
	ma, _ := tree.Mapping(a)
	mb, _ := tree.Mapping(b)
	if c := cmp.Compare(len(ma), len(mb)); c != 0 {
		return c
	}

	ka, kb := SortedKeys(ma), SortedKeys(mb)
	if c := slices.CompareFunc(ka, kb, Compare); c != 0 {
		return c
	}
	for _, k := range ka {
		if c := Compare(ma[k], mb[k]); c != 0 {
			return c
		}
	}
	return 0
}

// SortedKeys returns the keys of m in natural order.
func SortedKeys(m map[any]any) []any {
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Compare)
	return keys
}

// Sort returns a stably sorted copy of seq.
func Sort(seq []any) []any {
	out := slices.Clone(seq)
	slices.SortStableFunc(out, Compare)
	return out
}

// Equal reports whether a and b are equal by value. Numbers compare
// numerically across types (NaN never equals anything), text compares across
// string kinds and byte slices, and everything else falls back to
// reflect.DeepEqual.
func Equal(a, b any) bool {
	na, aNum := asNumber(a)
	nb, bNum := asNumber(b)
	if aNum || bNum {
		if !aNum || !bNum || na.isNaN() || nb.isNaN() {
			return false
		}
		return compareNumbers(na, nb) == 0
	}

	if sa, ok := tree.Text(a); ok {
		sb, ok := tree.Text(b)
		return ok && sa == sb
	}

	return reflect.DeepEqual(a, b)
}
