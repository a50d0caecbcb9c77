package matcherrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrMismatch indicates a candidate did not match its spec.
	ErrMismatch = errors.New("mismatch")

	// ErrPredicate indicates a predicate could not be evaluated.
	ErrPredicate = errors.New("predicate error")

	// ErrPanic indicates a predicate panicked while being evaluated.
	ErrPanic = errors.New("predicate panic")

	// ErrPattern indicates a pattern could not be evaluated against a value.
	ErrPattern = errors.New("pattern error")

	// ErrConfig indicates an invalid predicate definition.
	ErrConfig = errors.New("configuration error")
)

// MismatchError reports that a candidate tree does not satisfy a spec.
type MismatchError struct {
	// Message is the caller-supplied or default assertion message
	Message string
	// Count is the number of recorded breaks
	Count int
	// Details is the formatted expected/got/diffs dump
	Details string
}

// Error returns a human-readable error message.
func (e *MismatchError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "mismatch"
	}
	if e.Count == 1 {
		return msg + " (1 break)"
	}
	return fmt.Sprintf("%s (%d breaks)", msg, e.Count)
}

// Is reports whether target matches this error type.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// PredicateError represents a fault raised while evaluating a predicate.
type PredicateError struct {
	// Predicate is a textual rendering of the predicate
	Predicate string
	// Value is the value the predicate was applied to
	Value any
	// Panic holds the recovered panic value, if the predicate panicked
	Panic any
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PredicateError) Error() string {
	msg := "predicate error"
	if e.Panic != nil {
		msg = "predicate panic"
	}
	if e.Predicate != "" {
		msg += " in " + e.Predicate
	}
	if e.Panic != nil {
		msg += fmt.Sprintf(": %v", e.Panic)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PredicateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrPredicate, and ErrPanic when a panic was recovered.
func (e *PredicateError) Is(target error) bool {
	if target == ErrPredicate {
		return true
	}
	return target == ErrPanic && e.Panic != nil
}

// PatternError represents a failure to apply a pattern to a value.
type PatternError struct {
	// Pattern is the pattern source text
	Pattern string
	// Value is the value the pattern was applied to
	Value any
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "pattern error"
	if e.Pattern != "" {
		msg += fmt.Sprintf(" for %q", e.Pattern)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// ConfigError represents an invalid predicate definition, such as a glob or
// expression that does not compile.
type ConfigError struct {
	// Kind names the predicate kind (e.g., "glob", "expr", "tag")
	Kind string
	// Value is the rejected definition
	Value string
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Kind != "" {
		msg += " in " + e.Kind
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
