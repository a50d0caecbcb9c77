// Package matcher compares candidate trees against spec trees.
//
// A tree is built from mappings, sequences and scalar values, as produced
// by decoding JSON or YAML. A spec tree has the same shape but any position
// may hold a constraint instead of a literal value:
//
//   - a reflect.Type or *predicate.TypeMatch, satisfied by instances of the types
//   - a *regexp.Regexp or *regexp2.Regexp, matched from the start of text values
//   - a predicate.Predicate or a func(T) bool, satisfied when it returns true
//
// Any other value is a literal and must be equal to the candidate value.
// Keys absent on one side are reported against predicate.Missing.
//
// # Quick Start
//
//	spec := map[string]any{
//		"id":   predicate.TypeOf[float64](),
//		"name": regexp.MustCompile(`[a-z]+`),
//		"tags": []any{"a", "b"},
//	}
//	m := matcher.Compile(spec)
//	if bs := m.Breaks(candidate, matcher.Unordered()); bs != nil {
//		fmt.Println(bs.Details())
//	}
//
// # Sequences
//
// Sequences are compared position by position. With Unordered, both sides
// are sorted first, so only the multiset of elements matters. Note that an
// unordered comparison sorts the spec sequence too.
//
// # Key-set mismatches
//
// When the keys of a candidate mapping differ from those of the spec, the
// missing and extra keys are reported and the values of the common keys
// at that mapping are not compared. WithExhaustive compares them anyway.
//
// # Testing
//
// AssertMatches and RequireMatches plug into testify:
//
//	matcher.Compile(spec).AssertMatches(t, got, matcher.WithMessage("unexpected response"))
package matcher
