package seq

import (
	"iter"

	"github.com/charmingruby/lazyseq/option"
)

// Fold reduces the iterator from left to right starting with init. An empty
// iterator returns init unchanged.
//
// Example:
//
//	sum := seq.Fold(seq.Range(1, 10), 0, func(acc, v int) int { return acc + v })
func Fold[T any, U any](it *Iterator[T], init U, fn func(U, T) U) U {
	acc := init
	for {
		v, ok := it.Pull()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// Reduce folds the remaining elements using the first one as the seed. It
// returns None when the iterator is already exhausted.
func (it *Iterator[T]) Reduce(fn func(T, T) T) option.Option[T] {
	first, ok := it.Pull()
	if !ok {
		return option.None[T]()
	}
	return option.Some(Fold(it, first, fn))
}

// Count drains the iterator and returns the number of elements pulled.
func (it *Iterator[T]) Count() int {
	n := 0
	for _, ok := it.Pull(); ok; _, ok = it.Pull() {
		n++
	}
	return n
}

// Position returns the index of the first element satisfying predicate. It
// stops pulling at the match.
func (it *Iterator[T]) Position(predicate func(T) bool) option.Option[int] {
	for idx := 0; ; idx++ {
		v, ok := it.Pull()
		if !ok {
			return option.None[int]()
		}
		if predicate(v) {
			return option.Some(idx)
		}
	}
}

// Find returns the first element satisfying predicate. It stops pulling at
// the match.
func (it *Iterator[T]) Find(predicate func(T) bool) option.Option[T] {
	for {
		v, ok := it.Pull()
		if !ok {
			return option.None[T]()
		}
		if predicate(v) {
			return option.Some(v)
		}
	}
}

// All reports whether every element satisfies predicate. It stops at the first
// failure and is true for an empty iterator.
func (it *Iterator[T]) All(predicate func(T) bool) bool {
	for {
		v, ok := it.Pull()
		if !ok {
			return true
		}
		if !predicate(v) {
			return false
		}
	}
}

// Any reports whether some element satisfies predicate. It stops at the first
// match and is false for an empty iterator.
func (it *Iterator[T]) Any(predicate func(T) bool) bool {
	return it.Find(predicate).IsSome()
}

// Last drains the iterator and returns the final element.
func (it *Iterator[T]) Last() option.Option[T] {
	last := option.None[T]()
	for v, ok := it.Pull(); ok; v, ok = it.Pull() {
		last = option.Some(v)
	}
	return last
}

// Nth returns the element at index n counted from the current cursor. The
// elements before it are consumed, so repeated calls keep advancing. Panics if
// n is negative.
func (it *Iterator[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		panic(invalidArgument("nth index must be >= 0, got %d", n))
	}
	for range n {
		if _, ok := it.Pull(); !ok {
			return option.None[T]()
		}
	}
	return it.Next()
}

// ForEach calls fn with every remaining element, in order.
func (it *Iterator[T]) ForEach(fn func(T)) {
	for v, ok := it.Pull(); ok; v, ok = it.Pull() {
		fn(v)
	}
}

// Collect hands the remaining elements to build and returns its result. It is
// the bridge to eager containers.
//
// Example:
//
//	values := seq.Collect(it, slices.Collect[int])
func Collect[T any, C any](it *Iterator[T], build func(iter.Seq[T]) C) C {
	return build(it.Values())
}

// ToSlice exhausts the iterator and collects its values. The result is never
// nil.
func ToSlice[T any](it *Iterator[T]) []T {
	return Fold(it, []T{}, func(acc []T, v T) []T { return append(acc, v) })
}
