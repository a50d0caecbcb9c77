package predicate

import (
	"errors"
	"regexp"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"

	"github.com/erraggy/jsonmatch/matcherrors"
)

func TestRegexpMatch(t *testing.T) {
	a := RegexpMatch{Pattern: "[a-z][A-Z]{3}"}
	b := RegexpMatch{Pattern: "[a-z][A-Z]{3}"}
	c := RegexpMatch{Pattern: "[a-z]"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a, b)
	assert.Equal(t, `RegexpMatch("[a-z][A-Z]{3}")`, a.String())
}

func TestIsPattern(t *testing.T) {
	assert.True(t, IsPattern(regexp.MustCompile("a")))
	assert.True(t, IsPattern(regexp2.MustCompile("a", regexp2.None)))
	assert.False(t, IsPattern("a"))
	assert.False(t, IsPattern((*regexp.Regexp)(nil)))
	assert.False(t, IsPattern(nil))
}

func TestPatternText(t *testing.T) {
	assert.Equal(t, "[a-z]+", PatternText(regexp.MustCompile("[a-z]+")))
	assert.Equal(t, `(?<=a)b`, PatternText(regexp2.MustCompile(`(?<=a)b`, regexp2.None)))
	assert.Equal(t, "", PatternText(42))
}

func TestMatchPattern(t *testing.T) {
	re := regexp.MustCompile(`[a-z][A-Z]{3}`)
	re2 := regexp2.MustCompile(`[a-z](?=[A-Z]{3})`, regexp2.None)

	tests := []struct {
		name     string
		pattern  any
		value    any
		expected bool
	}{
		{"match at start", re, "aBBB", true},
		{"match with trailing text", re, "aBBBzzz", true},
		{"match not at start", re, "zz aBBB", false},
		{"no match", re, "doesn't match", false},
		{"bytes are text", re, []byte("aBBB"), true},
		{"regexp2 lookahead", re2, "aBBB", true},
		{"regexp2 not at start", re2, "1aBBB", false},
		{"regexp2 no match", re2, "abbb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := MatchPattern(tt.pattern, tt.value)
			assert.NoError(t, res.Err)
			assert.Equal(t, tt.expected, res.Satisfied())
		})
	}
}

func TestMatchPattern_NonText(t *testing.T) {
	res := MatchPattern(regexp.MustCompile(`\d+`), 42)
	assert.False(t, res.Satisfied())
	assert.True(t, errors.Is(res.Err, matcherrors.ErrPattern))

	var pe *matcherrors.PatternError
	if assert.ErrorAs(t, res.Err, &pe) {
		assert.Equal(t, `\d+`, pe.Pattern)
		assert.Equal(t, 42, pe.Value)
	}

	res = MatchPattern(regexp.MustCompile(`x`), nil)
	assert.False(t, res.Satisfied())
	assert.Error(t, res.Err)
}
