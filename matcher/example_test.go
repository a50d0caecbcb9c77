package matcher_test

import (
	"fmt"
	"regexp"

	"github.com/erraggy/jsonmatch/matcher"
	"github.com/erraggy/jsonmatch/predicate"
)

func ExampleMatcher_Breaks() {
	spec := map[string]any{
		"id":   predicate.TypeOf[float64](),
		"name": regexp.MustCompile(`[a-z]+`),
	}
	m := matcher.Compile(spec)

	bs := m.Breaks(map[string]any{"id": "7", "name": "bob"})
	for _, br := range bs.All() {
		fmt.Printf("%s %s: expected %v, got %v\n", br.Path, br.Kind, br.Expected, br.Actual)
	}
	// Output:
	// id type: expected TypeMatch(float64), got 7
}

func ExampleUnordered() {
	m := matcher.Compile([]any{1, 2, 3})

	fmt.Println(m.Matches([]any{3, 1, 2}, matcher.Unordered()))
	fmt.Println(m.Matches([]any{3, 1, 2}))
	// Output:
	// true
	// false
}

func ExampleMatch() {
	bs := matcher.Match(
		map[string]any{"a": 1, "b": 2},
		map[string]any{"a": 1, "c": 3},
	)
	fmt.Println(bs)
	for _, s := range bs.Summaries() {
		fmt.Printf("%s %s: %s vs %s\n", s.Path, s.Kind, s.Expected, s.Actual)
	}
	// Output:
	// <2 breaks>
	// b missing: 2 vs <MissingKey>
	// c extra: <MissingKey> vs 3
}

func ExampleMatcher_Check() {
	m := matcher.Compile(map[string]any{"status": "ok"})

	err := m.Check(map[string]any{"status": "down"}, matcher.WithMessage("unhealthy"))
	fmt.Println(err)
	// Output:
	// unhealthy (1 break)
}
