package seq

// Map lazily transforms iterator values. fn runs once per pulled element, in
// source order, at the moment the result is pulled.
func Map[A any, B any](it *Iterator[A], fn func(A) B) *Iterator[B] {
	return New[B](&mapSource[A, B]{upstream: it, fn: fn})
}

// Filter keeps values satisfying predicate. A single pull may pull several
// upstream elements.
func (it *Iterator[T]) Filter(predicate func(T) bool) *Iterator[T] {
	return New[T](&filterSource[T]{upstream: it, predicate: predicate})
}

// Inspect calls fn with every pulled element and yields it unchanged.
func (it *Iterator[T]) Inspect(fn func(T)) *Iterator[T] {
	return New[T](&inspectSource[T]{upstream: it, fn: fn})
}

type mapSource[A any, B any] struct {
	upstream *Iterator[A]
	fn       func(A) B
}

func (s *mapSource[A, B]) Pull() (B, bool) {
	v, ok := s.upstream.Pull()
	if !ok {
		var zero B
		return zero, false
	}
	return s.fn(v), true
}

func (s *mapSource[A, B]) Stop() { s.upstream.Stop() }

type filterSource[T any] struct {
	upstream  *Iterator[T]
	predicate func(T) bool
}

func (s *filterSource[T]) Pull() (T, bool) {
	for {
		v, ok := s.upstream.Pull()
		if !ok {
			return v, false
		}
		if s.predicate(v) {
			return v, true
		}
	}
}

func (s *filterSource[T]) Stop() { s.upstream.Stop() }

type inspectSource[T any] struct {
	upstream *Iterator[T]
	fn       func(T)
}

func (s *inspectSource[T]) Pull() (T, bool) {
	v, ok := s.upstream.Pull()
	if ok {
		s.fn(v)
	}
	return v, ok
}

func (s *inspectSource[T]) Stop() { s.upstream.Stop() }
