package predicate

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/erraggy/jsonmatch/internal/tree"
	"github.com/erraggy/jsonmatch/matcherrors"
)

// RegexpMatch reports that a value was expected to match Pattern.
// It exists for reporting; matching is done against the original pattern.
type RegexpMatch struct {
	Pattern string
}

// Equal reports whether both wrap the same pattern text.
func (m RegexpMatch) Equal(other RegexpMatch) bool {
	return m.Pattern == other.Pattern
}

// String implements fmt.Stringer.
func (m RegexpMatch) String() string {
	return fmt.Sprintf("RegexpMatch(%q)", m.Pattern)
}

// IsPattern reports whether v is a pattern spec value.
func IsPattern(v any) bool {
	switch p := v.(type) {
	case *regexp.Regexp:
		return p != nil
	case *regexp2.Regexp:
		return p != nil
	default:
		return false
	}
}

// PatternText returns the source text of a pattern spec value.
func PatternText(p any) string {
	switch re := p.(type) {
	case *regexp.Regexp:
		return re.String()
	case *regexp2.Regexp:
		return re.String()
	default:
		return ""
	}
}

// MatchPattern matches v, interpreted as text, against p from position zero.
// The match must start at the beginning of the text but may end anywhere.
// A value that is not text yields a Result carrying a PatternError.
func MatchPattern(p any, v any) Result {
	s, ok := tree.Text(v)
	if !ok {
		return Result{Err: &matcherrors.PatternError{
			Pattern: PatternText(p),
			Value:   v,
			Message: fmt.Sprintf("cannot match value of type %T", v),
		}}
	}

	switch re := p.(type) {
	case *regexp.Regexp:
		// Leftmost-first: if any match starts at 0, the leftmost one does.
		loc := re.FindStringIndex(s)
		return Result{OK: loc != nil && loc[0] == 0}
	case *regexp2.Regexp:
		m, err := re.FindStringMatch(s)
		if err != nil {
			return Result{Err: &matcherrors.PatternError{Pattern: re.String(), Value: v, Cause: err}}
		}
		return Result{OK: m != nil && m.Index == 0}
	default:
		return Result{Err: &matcherrors.PatternError{
			Message: fmt.Sprintf("unsupported pattern type %T", p),
			Value:   v,
		}}
	}
}
