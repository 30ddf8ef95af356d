// Package spec provides a composable boolean predicate engine.
//
// Specifications are immutable values: combinators return new specifications
// wrapping their operands, and a composite's description is derived purely
// from the operands' descriptions.
package spec

// Specification is a self-describing predicate over candidates of type T.
type Specification[T any] interface {
	// IsSatisfiedBy reports whether the candidate matches the predicate.
	IsSatisfiedBy(candidate T) bool
	// Description returns a human-readable description of the predicate.
	Description() string
}

type funcSpec[T any] struct {
	desc string
	fn   func(T) bool
}

func (s funcSpec[T]) IsSatisfiedBy(candidate T) bool { return s.fn(candidate) }
func (s funcSpec[T]) Description() string            { return s.desc }

// New builds a leaf specification from a description and a predicate.
func New[T any](description string, predicate func(T) bool) Specification[T] {
	return funcSpec[T]{desc: description, fn: predicate}
}

type andSpec[T any] struct {
	left, right Specification[T]
}

func (s andSpec[T]) IsSatisfiedBy(candidate T) bool {
	return s.left.IsSatisfiedBy(candidate) && s.right.IsSatisfiedBy(candidate)
}

func (s andSpec[T]) Description() string {
	return "(" + s.left.Description() + " かつ " + s.right.Description() + ")"
}

// And matches candidates satisfying both operands.
func And[T any](left, right Specification[T]) Specification[T] {
	return andSpec[T]{left: left, right: right}
}

type orSpec[T any] struct {
	left, right Specification[T]
}

func (s orSpec[T]) IsSatisfiedBy(candidate T) bool {
	return s.left.IsSatisfiedBy(candidate) || s.right.IsSatisfiedBy(candidate)
}

func (s orSpec[T]) Description() string {
	return "(" + s.left.Description() + " または " + s.right.Description() + ")"
}

// Or matches candidates satisfying either operand.
func Or[T any](left, right Specification[T]) Specification[T] {
	return orSpec[T]{left: left, right: right}
}

type notSpec[T any] struct {
	inner Specification[T]
}

func (s notSpec[T]) IsSatisfiedBy(candidate T) bool {
	return !s.inner.IsSatisfiedBy(candidate)
}

func (s notSpec[T]) Description() string {
	return s.inner.Description() + "ではない"
}

// Not matches candidates that do not satisfy the operand.
func Not[T any](inner Specification[T]) Specification[T] {
	return notSpec[T]{inner: inner}
}

// Filter returns the items satisfying s, preserving input order.
// The input slice is never mutated.
func Filter[T any](items []T, s Specification[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if s.IsSatisfiedBy(item) {
			out = append(out, item)
		}
	}
	return out
}
