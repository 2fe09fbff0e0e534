package sequence

import "iter"

// Iterator is a generic, immutable, chainable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator from a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Seq returns the underlying sequence function for range-over-func use.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Filter keeps elements for which pred returns true.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	src := i.seq
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for v := range src {
				if pred(v) && !yield(v) {
					return
				}
			}
		},
	}
}

// First returns the first element, if any.
func (i *Iterator[T]) First() (T, bool) {
	for v := range i.seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Collect exhausts the iterator and returns a slice of all elements.
func (i *Iterator[T]) Collect() []T {
	var out []T
	for v := range i.seq {
		out = append(out, v)
	}
	return out
}

// Count exhausts the iterator and returns the number of elements.
func (i *Iterator[T]) Count() int {
	n := 0
	for range i.seq {
		n++
	}
	return n
}

// Map transforms elements of an iterator. Free function because Go methods
// cannot introduce type parameters.
func Map[T, U any](i *Iterator[T], fn func(T) U) *Iterator[U] {
	return &Iterator[U]{
		seq: func(yield func(U) bool) {
			for v := range i.seq {
				if !yield(fn(v)) {
					return
				}
			}
		},
	}
}
