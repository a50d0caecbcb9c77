package predicate

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/erraggy/jsonmatch/internal/tree"
	"github.com/erraggy/jsonmatch/matcherrors"
)

// GlobMatch is satisfied by text matching a glob pattern.
type GlobMatch struct {
	pattern  string
	compiled glob.Glob
}

// Glob compiles a glob pattern. Separators, when given, stop "*" from
// matching across them (use "**" to cross them).
//
//	predicate.Glob("*.example.com", '.')
func Glob(pattern string, separators ...rune) (*GlobMatch, error) {
	if pattern == "" {
		return nil, &matcherrors.ConfigError{Kind: "glob", Message: "no glob pattern defined"}
	}
	compiled, err := glob.Compile(pattern, separators...)
	if err != nil {
		return nil, &matcherrors.ConfigError{Kind: "glob", Value: pattern, Cause: err}
	}
	return &GlobMatch{pattern: pattern, compiled: compiled}, nil
}

// MustGlob is like Glob but panics on an invalid pattern.
func MustGlob(pattern string, separators ...rune) *GlobMatch {
	g, err := Glob(pattern, separators...)
	if err != nil {
		panic(err)
	}
	return g
}

// Match implements Predicate.
func (g *GlobMatch) Match(v any) (bool, error) {
	s, ok := tree.Text(v)
	if !ok {
		return false, &matcherrors.PatternError{
			Pattern: g.pattern,
			Value:   v,
			Message: fmt.Sprintf("cannot match value of type %T", v),
		}
	}
	return g.compiled.Match(s), nil
}

// String implements fmt.Stringer.
func (g *GlobMatch) String() string {
	return fmt.Sprintf("Glob(%q)", g.pattern)
}
