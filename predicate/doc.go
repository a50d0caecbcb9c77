/*
Package predicate provides the non-literal values used in jsonmatch specs and
in the break reports produced by the matcher package.

# Overview

A spec is an ordinary Go tree of maps, slices and scalars. At any position a
spec may hold, instead of a literal, one of:

  - a type set: a [reflect.Type] (see [TypeOf] and [Text]) or a [*TypeMatch]
  - a pattern: a [*regexp.Regexp] or a [*regexp2.Regexp]
  - a predicate: a [Predicate], a func(any) bool, a func(any) (bool, error),
    or any other single-argument func returning bool or (bool, error)

Break reports describe expectations with the wrapper types in this package:

  - [TypeMatch]: the candidate should have been an instance of one of the types
  - [RegexpMatch]: the candidate should have matched the pattern
  - [MissingKey]: the key exists on only one side

The wrappers compare by payload so that reports can be checked with plain
equality in tests.

# Text aliasing

A type set containing string accepts any text-like value: all string kinds
(named string types included) and byte slices.

# Ready-made predicates

  - [Fn], [FnErr]: named wrappers around plain funcs
  - [Len]: length of text, sequence or mapping
  - [EqualFold]: Unicode case-insensitive text equality
  - [Glob]: shell-style glob on text
  - [Tag]: validator tags such as "email", "uuid4" or "min=3"
  - [Expr]: CEL boolean expression over the variable x

All of them are immutable and safe for concurrent use.

# Evaluation

[Eval] and [MatchPattern] never panic. They return a [Result]; any fault
(a returned error, a panic, a non-text value given to a pattern) is carried
in Result.Err and means "not satisfied".
*/
package predicate
