package matcher

import (
	"github.com/erraggy/jsonmatch/internal/canon"
	"github.com/erraggy/jsonmatch/internal/pathutil"
	"github.com/erraggy/jsonmatch/internal/tree"
	"github.com/erraggy/jsonmatch/predicate"
)

// specKind is the role a spec value plays during matching.
type specKind int

const (
	specMapping specKind = iota
	specSequence
	specTypeSet
	specPattern
	specPredicate
	specLiteral
)

func (k specKind) String() string {
	switch k {
	case specMapping:
		return "mapping"
	case specSequence:
		return "sequence"
	case specTypeSet:
		return "type set"
	case specPattern:
		return "pattern"
	case specPredicate:
		return "predicate"
	default:
		return "literal"
	}
}

// classify returns the role of a spec value. The checks run in priority
// order, so a value is classified by the first role it qualifies for.
func classify(v any) specKind {
	switch {
	case tree.IsMapping(v):
		return specMapping
	case tree.IsSequence(v):
		return specSequence
	case predicate.IsTypeSet(v):
		return specTypeSet
	case predicate.IsPattern(v):
		return specPattern
	case predicate.IsCallable(v):
		return specPredicate
	default:
		return specLiteral
	}
}

// walker carries the state of one match call.
type walker struct {
	cfg    config
	path   *pathutil.PathBuilder
	report *Breaks
}

func (w *walker) compareRoot(spec, candidate any) {
	switch classify(spec) {
	case specMapping:
		if seq, ok := tree.Sequence(candidate); ok {
			candidate = tree.Indexed(w.positional(seq))
		}
		w.compareMapping(spec, candidate)
	case specSequence:
		expected, _ := tree.Sequence(spec)
		if seq, ok := tree.Sequence(candidate); ok {
			candidate = tree.Indexed(w.positional(seq))
		}
		w.compareMapping(tree.Indexed(w.positional(expected)), candidate)
	default:
		w.compareValue(spec, candidate)
	}
}

func (w *walker) compareMapping(spec, candidate any) {
	expected, _ := tree.Mapping(spec)
	actual, ok := tree.Mapping(candidate)
	if !ok {
		w.cfg.logger.Info("candidate is not a mapping",
			"path", Path(w.path.Segments()).String(),
			"type", tree.TypeOf(candidate))
		w.record(KindNotMapping, predicate.NewTypeMatch(predicate.MappingType), tree.TypeOf(candidate))
		return
	}

	var missing, extra int
	for _, k := range canon.SortedKeys(expected) {
		if _, found := actual[k]; !found {
			missing++
			w.at(k, func() { w.record(KindMissing, expected[k], predicate.Missing) })
		}
	}
	for _, k := range canon.SortedKeys(actual) {
		if _, found := expected[k]; !found {
			extra++
			w.at(k, func() { w.record(KindExtra, predicate.Missing, actual[k]) })
		}
	}
	if missing > 0 || extra > 0 {
		w.cfg.logger.Info("key sets differ",
			"path", Path(w.path.Segments()).String(),
			"missing", missing,
			"extra", extra)
		if !w.cfg.exhaustive {
			return
		}
	}

	for _, k := range canon.SortedKeys(expected) {
		v, found := actual[k]
		if !found {
			continue
		}
		w.at(k, func() { w.compareValue(expected[k], v) })
	}
}

func (w *walker) compareSequence(spec, candidate any) {
	expected, _ := tree.Sequence(spec)
	var actual []any
	if candidate != nil {
		seq, ok := tree.Sequence(candidate)
		if !ok {
			w.cfg.logger.Info("candidate is not a sequence",
				"path", Path(w.path.Segments()).String(),
				"type", tree.TypeOf(candidate))
			w.record(KindNotSequence, predicate.NewTypeMatch(predicate.SequenceType), tree.TypeOf(candidate))
			return
		}
		actual = seq
	}
	w.compareMapping(tree.Indexed(w.positional(expected)), tree.Indexed(w.positional(actual)))
}

func (w *walker) compareValue(spec, candidate any) {
	switch classify(spec) {
	case specMapping:
		w.compareMapping(spec, candidate)
	case specSequence:
		w.compareSequence(spec, candidate)
	case specTypeSet:
		tm, _ := predicate.AsTypeMatch(spec)
		if !tm.IsMatch(candidate) {
			w.record(KindType, tm, candidate)
		}
	case specPattern:
		res := predicate.MatchPattern(spec, candidate)
		if !res.Satisfied() {
			w.fault(res.Err)
			w.record(KindPattern, predicate.RegexpMatch{Pattern: predicate.PatternText(spec)}, candidate)
		}
	case specPredicate:
		res := predicate.Eval(spec, candidate)
		if !res.Satisfied() {
			w.fault(res.Err)
			w.record(KindPredicate, spec, candidate)
		}
	default:
		if !canon.Equal(spec, candidate) {
			w.record(KindLiteral, spec, candidate)
		}
	}
}

// positional returns seq in comparison order: as is when ordered,
// otherwise as a sorted copy.
func (w *walker) positional(seq []any) []any {
	if w.cfg.ordered {
		return seq
	}
	return canon.Sort(seq)
}

// at runs fn with key pushed onto the current path.
func (w *walker) at(key any, fn func()) {
	w.path.Push(key)
	defer w.path.Pop()
	fn()
}

func (w *walker) record(kind Kind, expected, actual any) {
	w.report.add(w.path.Segments(), kind, expected, actual)
}

func (w *walker) fault(err error) {
	if err == nil {
		return
	}
	w.cfg.logger.Info("value match failed",
		"path", Path(w.path.Segments()).String(),
		"error", err)
}
