package matcher

import (
	"github.com/erraggy/jsonmatch/internal/pathutil"
)

// Kind classifies a Break.
type Kind string

const (
	// KindMissing is a key present in the spec but absent from the candidate.
	KindMissing Kind = "missing"
	// KindExtra is a key present in the candidate but absent from the spec.
	KindExtra Kind = "extra"
	// KindNotMapping is a non-mapping candidate where a mapping was expected.
	KindNotMapping Kind = "not_mapping"
	// KindNotSequence is a non-sequence candidate where a sequence was expected.
	KindNotSequence Kind = "not_sequence"
	// KindType is a value outside a type set.
	KindType Kind = "type"
	// KindPattern is a value that does not match a pattern.
	KindPattern Kind = "pattern"
	// KindPredicate is a value that does not satisfy a predicate.
	KindPredicate Kind = "predicate"
	// KindLiteral is a value that is not equal to a literal.
	KindLiteral Kind = "literal"
)

// Path locates a position in a tree. Segments are mapping keys or int
// sequence indices; the empty path is the root.
type Path []any

// String renders the path as "a.b[0].c", or "<root>" for the root.
func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	return pathutil.Format(p)
}

// Break is one discrepancy between a spec and a candidate.
type Break struct {
	Path Path
	Kind Kind
	// Expected is the spec side: a literal, the original predicate,
	// a *predicate.TypeMatch, a predicate.RegexpMatch or predicate.Missing.
	Expected any
	// Actual is the candidate side, predicate.Missing for a missing key or
	// a reflect.Type for container kind mismatches.
	Actual any
}

// Summary is a Break rendered as text, for structured output.
type Summary struct {
	Path     string `json:"path" yaml:"path"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual" yaml:"actual"`
}
