// Package matcherrors provides structured error types for the jsonmatch library.
//
// Import path: github.com/erraggy/jsonmatch/matcherrors
//
// Mismatches found while walking a candidate tree are never returned as
// errors by the matching engine; they are collected into a report. The types
// in this package describe the few conditions that do surface as errors:
//
//   - [MismatchError]: returned by Matcher.Check when a candidate doesn't match
//   - [PredicateError]: a predicate returned an error or panicked
//   - [PatternError]: a pattern could not be evaluated against a value
//   - [ConfigError]: a ready-made predicate could not be constructed
//
// # Sentinel Errors
//
//   - [ErrMismatch]: Matches any [MismatchError]
//   - [ErrPredicate]: Matches any [PredicateError]
//   - [ErrPanic]: Matches [PredicateError] with a recovered panic
//   - [ErrPattern]: Matches any [PatternError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	if err := m.Check(candidate); errors.Is(err, matcherrors.ErrMismatch) {
//	    var mm *matcherrors.MismatchError
//	    if errors.As(err, &mm) {
//	        fmt.Println(mm.Details)
//	    }
//	}
package matcherrors
