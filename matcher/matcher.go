package matcher

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonmatch/internal/pathutil"
	"github.com/erraggy/jsonmatch/matcherrors"
)

// Matcher compares candidate trees against a spec tree.
//
// A Matcher holds no mutable state and may be shared between goroutines,
// provided the spec and the predicates embedded in it are not modified.
type Matcher struct {
	spec any
	cfg  config
}

// Compile wraps spec in a Matcher. The spec is not validated, so Compile
// never fails. opts become the defaults of every call on the Matcher.
func Compile(spec any, opts ...Option) *Matcher {
	return &Matcher{
		spec: spec,
		cfg:  defaultConfig().apply(opts),
	}
}

// Match compiles spec and compares candidate against it in one step.
func Match(spec, candidate any, opts ...Option) *Breaks {
	return Compile(spec).Breaks(candidate, opts...)
}

// Spec returns the spec tree.
func (m *Matcher) Spec() any {
	return m.spec
}

// Breaks compares candidate against the spec in one full traversal and
// returns every discrepancy found, or nil when the candidate matches.
func (m *Matcher) Breaks(candidate any, opts ...Option) *Breaks {
	return m.breaks(candidate, m.cfg.apply(opts))
}

func (m *Matcher) breaks(candidate any, cfg config) *Breaks {
	w := &walker{
		cfg:    cfg,
		path:   pathutil.Get(),
		report: newBreaks(m.spec, candidate),
	}
	defer pathutil.Put(w.path)

	cfg.logger.Debug("matching candidate", "ordered", cfg.ordered, "exhaustive", cfg.exhaustive)
	w.compareRoot(m.spec, candidate)
	cfg.logger.Debug("match complete", "breaks", w.report.Len())

	if w.report.Empty() {
		return nil
	}
	return w.report
}

// Matches reports whether candidate satisfies the spec.
func (m *Matcher) Matches(candidate any, opts ...Option) bool {
	return m.Breaks(candidate, opts...).Empty()
}

// Check returns nil when candidate satisfies the spec, otherwise a
// *matcherrors.MismatchError carrying the full report dump.
func (m *Matcher) Check(candidate any, opts ...Option) error {
	cfg := m.cfg.apply(opts)
	bs := m.breaks(candidate, cfg)
	if bs == nil {
		return nil
	}
	return &matcherrors.MismatchError{
		Message: cfg.message,
		Count:   bs.Len(),
		Details: bs.Details(),
	}
}

// AssertMatches fails t with the configured message and the report dump
// when candidate does not satisfy the spec. It returns whether it matched.
//
//	m := matcher.Compile(map[string]any{"id": predicate.TypeOf[float64]()})
//	m.AssertMatches(t, got)
func (m *Matcher) AssertMatches(t assert.TestingT, candidate any, opts ...Option) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	cfg := m.cfg.apply(opts)
	bs := m.breaks(candidate, cfg)
	if bs == nil {
		return true
	}
	return assert.Fail(t, cfg.message, bs.Details())
}

// RequireMatches is like AssertMatches but stops the test on mismatch.
func (m *Matcher) RequireMatches(t require.TestingT, candidate any, opts ...Option) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !m.AssertMatches(t, candidate, opts...) {
		t.FailNow()
	}
}
