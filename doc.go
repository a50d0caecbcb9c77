// Package jsonmatch compares semi-structured data, such as decoded JSON or
// YAML documents, against flexible specifications.
//
// A specification is an ordinary tree of mappings, sequences and values in
// which any position may also hold a constraint: a type, a regular
// expression or a predicate. Comparing a candidate tree against it yields a
// report of every discrepancy, each located by its path.
//
// # Overview
//
// The library consists of these packages:
//
//   - matcher: compile specifications and compare candidates against them
//   - predicate: type, pattern, glob, tag, CEL and function constraints
//   - matcherrors: sentinel and typed errors shared by the other packages
//
// The jsonmatch command compares two documents from the command line.
//
// # Installation
//
//	go get github.com/erraggy/jsonmatch
//
// # Quick Start
//
//	import (
//		"github.com/erraggy/jsonmatch/matcher"
//		"github.com/erraggy/jsonmatch/predicate"
//	)
//
//	spec := map[string]any{
//		"id":     predicate.TypeOf[float64](),
//		"email":  predicate.MustTag("email"),
//		"status": "active",
//		"tags":   []any{"a", "b"},
//	}
//	bs := matcher.Compile(spec).Breaks(decoded, matcher.Unordered())
//	if bs != nil {
//		fmt.Println(bs.Details())
//	}
//
// In tests, assert directly:
//
//	matcher.Compile(spec).AssertMatches(t, decoded)
//
// # Reports
//
// A report lists one break per path. Paths render as "a.b[0].c", with
// "<root>" for the top of the tree. Keys present on one side only are
// reported against predicate.Missing.
package jsonmatch
