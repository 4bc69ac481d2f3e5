package seq

import (
	"github.com/go-softwarelab/common/pkg/types"

	"github.com/charmingruby/lazyseq/option"
)

// Positions lazily yields the indices of the elements satisfying predicate,
// in ascending order.
func (it *Iterator[T]) Positions(predicate func(T) bool) *Iterator[int] {
	return New[int](&positionsSource[T]{upstream: it, predicate: predicate})
}

// FindPositions lazily yields (index, element) pairs for the elements
// satisfying predicate, in ascending order.
func FindPositions[T any](it *Iterator[T], predicate func(T) bool) *Iterator[types.Pair[int, T]] {
	return New[types.Pair[int, T]](&findPositionsSource[T]{upstream: it, predicate: predicate})
}

// FindPosition returns the first (index, element) pair satisfying predicate.
// It stops pulling at the match.
func (it *Iterator[T]) FindPosition(predicate func(T) bool) option.Option[types.Pair[int, T]] {
	for idx := 0; ; idx++ {
		v, ok := it.Pull()
		if !ok {
			return option.None[types.Pair[int, T]]()
		}
		if predicate(v) {
			return option.Some(types.Pair[int, T]{Left: idx, Right: v})
		}
	}
}

// CartesianProduct yields every (a, b) with a from outer and b from inner,
// outer-major. inner is buffered in full at the first pull and replayed for
// each outer element; outer is consumed once.
//
// Example:
//
//	pairs := seq.CartesianProduct(seq.Of(0, 1), seq.Of('a', 'b'))
//	// (0,a) (0,b) (1,a) (1,b)
func CartesianProduct[A any, B any](outer *Iterator[A], inner Source[B]) *Iterator[types.Pair[A, B]] {
	return New[types.Pair[A, B]](&productSource[A, B]{outer: outer, inner: asIterator(inner)})
}

type positionsSource[T any] struct {
	upstream  *Iterator[T]
	predicate func(T) bool
	idx       int
}

func (s *positionsSource[T]) Pull() (int, bool) {
	for {
		v, ok := s.upstream.Pull()
		if !ok {
			return 0, false
		}
		idx := s.idx
		s.idx++
		if s.predicate(v) {
			return idx, true
		}
	}
}

func (s *positionsSource[T]) Stop() { s.upstream.Stop() }

type findPositionsSource[T any] struct {
	upstream  *Iterator[T]
	predicate func(T) bool
	idx       int
}

func (s *findPositionsSource[T]) Pull() (types.Pair[int, T], bool) {
	for {
		v, ok := s.upstream.Pull()
		if !ok {
			return types.Pair[int, T]{}, false
		}
		idx := s.idx
		s.idx++
		if s.predicate(v) {
			return types.Pair[int, T]{Left: idx, Right: v}, true
		}
	}
}

func (s *findPositionsSource[T]) Stop() { s.upstream.Stop() }

type productSource[A any, B any] struct {
	outer   *Iterator[A]
	inner   *Iterator[B]
	buffer  []B
	loaded  bool
	current A
	started bool
	idx     int
}

func (s *productSource[A, B]) Pull() (types.Pair[A, B], bool) {
	if !s.loaded {
		s.buffer = ToSlice(s.inner)
		s.loaded = true
	}
	if len(s.buffer) == 0 {
		return types.Pair[A, B]{}, false
	}
	if !s.started || s.idx == len(s.buffer) {
		a, ok := s.outer.Pull()
		if !ok {
			return types.Pair[A, B]{}, false
		}
		s.current, s.started, s.idx = a, true, 0
	}
	b := s.buffer[s.idx]
	s.idx++
	return types.Pair[A, B]{Left: s.current, Right: b}, true
}

func (s *productSource[A, B]) Stop() {
	s.outer.Stop()
	s.inner.Stop()
}
