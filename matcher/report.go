package matcher

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/jsonmatch/internal/canon"
	"github.com/erraggy/jsonmatch/internal/pathutil"
	"github.com/erraggy/jsonmatch/internal/pretty"
)

// Breaks is the report of a single match call. A nil *Breaks means the
// candidate matched; every method is safe to call on nil.
type Breaks struct {
	// Spec is the spec tree that was compared.
	Spec any
	// Against is the candidate tree that was compared.
	Against any

	entries map[string]Break
}

func newBreaks(spec, against any) *Breaks {
	return &Breaks{
		Spec:    spec,
		Against: against,
		entries: make(map[string]Break),
	}
}

// add records a break at path, which the report takes ownership of.
// A later break at the same path replaces the earlier one.
func (b *Breaks) add(path []any, kind Kind, expected, actual any) {
	b.entries[pathutil.Key(path)] = Break{Path: path, Kind: kind, Expected: expected, Actual: actual}
}

// Len returns the number of breaks.
func (b *Breaks) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Empty reports whether there are no breaks.
func (b *Breaks) Empty() bool {
	return b.Len() == 0
}

// Get returns the break recorded at the given path. Call Get() with no
// segments for the root.
func (b *Breaks) Get(path ...any) (Break, bool) {
	if b == nil {
		return Break{}, false
	}
	br, ok := b.entries[pathutil.Key(path)]
	return br, ok
}

// All returns the breaks ordered by path. Paths compare segment by segment
// and a path sorts before any path it is a prefix of.
func (b *Breaks) All() []Break {
	if b.Empty() {
		return nil
	}
	out := make([]Break, 0, len(b.entries))
	for _, br := range b.entries {
		out = append(out, br)
	}
	slices.SortFunc(out, func(x, y Break) int {
		return comparePaths(x.Path, y.Path)
	})
	return out
}

func comparePaths(a, b Path) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := canon.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// Paths returns the paths of all breaks, in the order of All.
func (b *Breaks) Paths() []Path {
	all := b.All()
	if all == nil {
		return nil
	}
	out := make([]Path, len(all))
	for i, br := range all {
		out[i] = br.Path
	}
	return out
}

// PathsToBreaks maps each rendered path to its (expected, actual) pair.
func (b *Breaks) PathsToBreaks() map[string][2]any {
	out := make(map[string][2]any, b.Len())
	for _, br := range b.All() {
		out[br.Path.String()] = [2]any{br.Expected, br.Actual}
	}
	return out
}

// Summaries renders every break as text, in the order of All.
func (b *Breaks) Summaries() []Summary {
	all := b.All()
	out := make([]Summary, 0, len(all))
	for _, br := range all {
		out = append(out, Summary{
			Path:     br.Path.String(),
			Kind:     br.Kind,
			Expected: pretty.Value(br.Expected),
			Actual:   pretty.Value(br.Actual),
		})
	}
	return out
}

// String returns a short description such as "<2 breaks>".
func (b *Breaks) String() string {
	if b.Len() == 1 {
		return "<1 break>"
	}
	return fmt.Sprintf("<%d breaks>", b.Len())
}

// Details returns the expected tree, the candidate tree and one
// "path: (expected, actual)" line per break.
func (b *Breaks) Details() string {
	if b == nil {
		return ""
	}
	var diffs strings.Builder
	for _, br := range b.All() {
		fmt.Fprintf(&diffs, "%s: (%s, %s)\n", br.Path, pretty.Value(br.Expected), pretty.Value(br.Actual))
	}
	return fmt.Sprintf("Expected:\n%s\n\nGot:\n%s\n\nDiffs:\n%s\n",
		pretty.Tree(b.Spec), pretty.Tree(b.Against), strings.TrimRight(diffs.String(), "\n"))
}
