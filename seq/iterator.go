// Package seq provides lazy, pull-based sequences and their combinators.
//
// An Iterator wraps a single Source and owns it exclusively. Combinators such
// as Filter, Take or Map return a new Iterator that pulls from its upstream only
// when it is itself pulled; terminal operations such as Fold, Count or Find
// drain the iterator and return a plain value.
//
// Example:
//
//	evens := seq.FromSlice([]int{1, 2, 3, 4}).
//		Filter(func(v int) bool { return v%2 == 0 })
//	for v := range evens.Values() {
//		fmt.Println(v)
//	}
//
// Iterators are single-consumer and not safe for concurrent use.
package seq

import (
	"errors"
	"fmt"
	"iter"

	"github.com/charmingruby/lazyseq/option"
)

// ErrInvalidArgument is the panic payload (wrapped) for malformed combinator
// arguments such as a non-positive chunk size. It is raised at call time,
// never lazily at first pull.
var ErrInvalidArgument = errors.New("seq: invalid argument")

// Source is anything that can produce its next element on demand. When ok is
// false the source is exhausted.
type Source[T any] interface {
	Pull() (value T, ok bool)
}

// stopper is implemented by sources holding resources that must be released
// when the sequence is abandoned early.
type stopper interface {
	Stop()
}

// Iterator is a lazy, pull-based sequence. Once exhausted it stays exhausted.
// The zero value is an empty iterator.
type Iterator[T any] struct {
	src  Source[T]
	done bool
}

// New wraps src. No element is pulled until the iterator itself is pulled.
func New[T any](src Source[T]) *Iterator[T] {
	return &Iterator[T]{src: src}
}

// Pull advances the iterator by one element. When ok is false the iterator is
// exhausted and every later call reports the same without touching the source.
func (it *Iterator[T]) Pull() (T, bool) {
	if it == nil || it.done || it.src == nil {
		var zero T
		return zero, false
	}
	v, ok := it.src.Pull()
	if !ok {
		it.done = true
		var zero T
		return zero, false
	}
	return v, true
}

// Next returns the next element, or None once the iterator is exhausted.
func (it *Iterator[T]) Next() option.Option[T] {
	v, ok := it.Pull()
	return option.FromOk(v, ok)
}

// Values exposes the iterator to range-over-func loops. The returned sequence
// shares the cursor with Pull and Next: ranging consumes elements, and
// breaking out of the loop leaves the rest available.
//
// Example:
//
//	for v := range it.Values() {
//		if v > 10 {
//			break
//		}
//	}
//	rest := it.Count()
func (it *Iterator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Pull()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stop marks the iterator exhausted and releases whatever its sources hold.
// Only iterators built on FromSeq need it; in-memory sources can simply be
// abandoned.
func (it *Iterator[T]) Stop() {
	if it == nil {
		return
	}
	it.done = true
	if s, ok := it.src.(stopper); ok {
		s.Stop()
	}
}

// asIterator adopts src without double wrapping iterators.
func asIterator[T any](src Source[T]) *Iterator[T] {
	if it, ok := src.(*Iterator[T]); ok {
		return it
	}
	return New(src)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
