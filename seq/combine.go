package seq

import "github.com/go-softwarelab/common/pkg/types"

// Zip pairs elements of left and right in lockstep. It is exhausted as soon
// as either side is; left is pulled before right, so when right runs out first
// the left element pulled for that step is dropped.
func Zip[A any, B any](left *Iterator[A], right Source[B]) *Iterator[types.Pair[A, B]] {
	return New[types.Pair[A, B]](&zipSource[A, B]{left: left, right: asIterator(right)})
}

// Chain yields the remaining elements of the iterator followed by those of
// other.
func (it *Iterator[T]) Chain(other Source[T]) *Iterator[T] {
	return New[T](&chainSource[T]{first: it, second: asIterator(other)})
}

// Cycle repeats the iterator's elements forever. The first pass is buffered so
// later passes replay exactly the same elements. An empty iterator cycles to
// an empty iterator.
func (it *Iterator[T]) Cycle() *Iterator[T] {
	return New[T](&cycleSource[T]{upstream: it})
}

// Enumerate pairs every yielded element with its index, starting at 0.
//
// Example:
//
//	for p := range seq.Enumerate(seq.Of("a", "b")).Values() {
//		fmt.Println(p.Left, p.Right)
//	}
func Enumerate[T any](it *Iterator[T]) *Iterator[types.Pair[int, T]] {
	return New[types.Pair[int, T]](&enumerateSource[T]{upstream: it})
}

type zipSource[A any, B any] struct {
	left  *Iterator[A]
	right *Iterator[B]
}

func (s *zipSource[A, B]) Pull() (types.Pair[A, B], bool) {
	a, ok := s.left.Pull()
	if !ok {
		return types.Pair[A, B]{}, false
	}
	b, ok := s.right.Pull()
	if !ok {
		return types.Pair[A, B]{}, false
	}
	return types.Pair[A, B]{Left: a, Right: b}, true
}

func (s *zipSource[A, B]) Stop() {
	s.left.Stop()
	s.right.Stop()
}

type chainSource[T any] struct {
	first  *Iterator[T]
	second *Iterator[T]
}

func (s *chainSource[T]) Pull() (T, bool) {
	if v, ok := s.first.Pull(); ok {
		return v, true
	}
	return s.second.Pull()
}

func (s *chainSource[T]) Stop() {
	s.first.Stop()
	s.second.Stop()
}

type cycleSource[T any] struct {
	upstream  *Iterator[T]
	seen      []T
	replaying bool
	idx       int
}

func (s *cycleSource[T]) Pull() (T, bool) {
	if !s.replaying {
		if v, ok := s.upstream.Pull(); ok {
			s.seen = append(s.seen, v)
			return v, true
		}
		s.replaying = true
	}
	if len(s.seen) == 0 {
		var zero T
		return zero, false
	}
	v := s.seen[s.idx]
	s.idx = (s.idx + 1) % len(s.seen)
	return v, true
}

func (s *cycleSource[T]) Stop() { s.upstream.Stop() }

type enumerateSource[T any] struct {
	upstream *Iterator[T]
	idx      int
}

func (s *enumerateSource[T]) Pull() (types.Pair[int, T], bool) {
	v, ok := s.upstream.Pull()
	if !ok {
		return types.Pair[int, T]{}, false
	}
	p := types.Pair[int, T]{Left: s.idx, Right: v}
	s.idx++
	return p, true
}

func (s *enumerateSource[T]) Stop() { s.upstream.Stop() }
