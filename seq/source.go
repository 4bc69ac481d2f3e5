package seq

import "iter"

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) *Iterator[T] {
	return New[T](&sliceSource[T]{values: values})
}

// Of creates an iterator over the given values.
func Of[T any](values ...T) *Iterator[T] {
	return FromSlice(values)
}

// Empty returns an already exhausted iterator.
func Empty[T any]() *Iterator[T] {
	return &Iterator[T]{done: true}
}

// FromFunc adapts a pull function. The function is called once per pull and
// reports exhaustion with ok == false.
func FromFunc[T any](next func() (T, bool)) *Iterator[T] {
	if next == nil {
		return Empty[T]()
	}
	return New[T](funcSource[T](next))
}

// FromSeq adapts a push-style iter.Seq through iter.Pull. The sequence is not
// started until the first pull. Its coroutine is released when the iterator
// is exhausted or stopped; call Stop when abandoning it early.
func FromSeq[T any](s iter.Seq[T]) *Iterator[T] {
	if s == nil {
		return Empty[T]()
	}
	return New[T](&seqSource[T]{seq: s})
}

// Range yields the integers in [start, end).
func Range(start, end int) *Iterator[int] {
	cur := start
	return FromFunc(func() (int, bool) {
		if cur >= end {
			return 0, false
		}
		v := cur
		cur++
		return v, true
	})
}

// Repeat yields value forever.
func Repeat[T any](value T) *Iterator[T] {
	return FromFunc(func() (T, bool) {
		return value, true
	})
}

// Iterate yields seed, fn(seed), fn(fn(seed)), ... forever.
func Iterate[T any](seed T, fn func(T) T) *Iterator[T] {
	cur := seed
	started := false
	return FromFunc(func() (T, bool) {
		if started {
			cur = fn(cur)
		}
		started = true
		return cur, true
	})
}

type sliceSource[T any] struct {
	values []T
	idx    int
}

func (s *sliceSource[T]) Pull() (T, bool) {
	if s.idx >= len(s.values) {
		var zero T
		return zero, false
	}
	v := s.values[s.idx]
	s.idx++
	return v, true
}

type funcSource[T any] func() (T, bool)

func (f funcSource[T]) Pull() (T, bool) {
	return f()
}

type seqSource[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
}

func (s *seqSource[T]) Pull() (T, bool) {
	if s.next == nil {
		if s.seq == nil {
			var zero T
			return zero, false
		}
		s.next, s.stop = iter.Pull(s.seq)
		s.seq = nil
	}
	v, ok := s.next()
	if !ok {
		s.stop()
	}
	return v, ok
}

func (s *seqSource[T]) Stop() {
	s.seq = nil
	if s.stop != nil {
		s.stop()
	}
}
