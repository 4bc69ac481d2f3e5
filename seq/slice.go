package seq

// Take returns an iterator that yields at most n elements. The upstream is
// never pulled once n elements have been yielded. Panics if n is negative.
func (it *Iterator[T]) Take(n int) *Iterator[T] {
	if n < 0 {
		panic(invalidArgument("take count must be >= 0, got %d", n))
	}
	return New[T](&takeSource[T]{upstream: it, remaining: n})
}

// Skip discards the first n elements at the first pull, then yields the rest.
// Panics if n is negative.
func (it *Iterator[T]) Skip(n int) *Iterator[T] {
	if n < 0 {
		panic(invalidArgument("skip count must be >= 0, got %d", n))
	}
	return New[T](&skipSource[T]{upstream: it, n: n})
}

// StepBy yields the elements at positions 0, step, 2*step, ... The first
// element is always included. Panics if step < 1.
func (it *Iterator[T]) StepBy(step int) *Iterator[T] {
	if step < 1 {
		panic(invalidArgument("step must be >= 1, got %d", step))
	}
	return New[T](&stepSource[T]{upstream: it, step: step, first: true})
}

// TakeWhile yields elements while predicate holds. The first failing element
// is dropped and the iterator is exhausted from then on.
func (it *Iterator[T]) TakeWhile(predicate func(T) bool) *Iterator[T] {
	return New[T](&takeWhileSource[T]{upstream: it, predicate: predicate})
}

// SkipWhile drops leading elements while predicate holds, then yields every
// remaining element without consulting predicate again.
func (it *Iterator[T]) SkipWhile(predicate func(T) bool) *Iterator[T] {
	return New[T](&skipWhileSource[T]{upstream: it, predicate: predicate, skipping: true})
}

type takeSource[T any] struct {
	upstream  *Iterator[T]
	remaining int
}

func (s *takeSource[T]) Pull() (T, bool) {
	if s.remaining <= 0 {
		var zero T
		return zero, false
	}
	v, ok := s.upstream.Pull()
	if !ok {
		s.remaining = 0
		return v, false
	}
	s.remaining--
	return v, true
}

func (s *takeSource[T]) Stop() { s.upstream.Stop() }

type skipSource[T any] struct {
	upstream *Iterator[T]
	n        int
}

func (s *skipSource[T]) Pull() (T, bool) {
	for ; s.n > 0; s.n-- {
		if _, ok := s.upstream.Pull(); !ok {
			s.n = 0
			var zero T
			return zero, false
		}
	}
	return s.upstream.Pull()
}

func (s *skipSource[T]) Stop() { s.upstream.Stop() }

type stepSource[T any] struct {
	upstream *Iterator[T]
	step     int
	first    bool
}

func (s *stepSource[T]) Pull() (T, bool) {
	if s.first {
		s.first = false
		return s.upstream.Pull()
	}
	for range s.step - 1 {
		if _, ok := s.upstream.Pull(); !ok {
			var zero T
			return zero, false
		}
	}
	return s.upstream.Pull()
}

func (s *stepSource[T]) Stop() { s.upstream.Stop() }

type takeWhileSource[T any] struct {
	upstream  *Iterator[T]
	predicate func(T) bool
	stopped   bool
}

func (s *takeWhileSource[T]) Pull() (T, bool) {
	var zero T
	if s.stopped {
		return zero, false
	}
	v, ok := s.upstream.Pull()
	if !ok || !s.predicate(v) {
		s.stopped = true
		return zero, false
	}
	return v, true
}

func (s *takeWhileSource[T]) Stop() { s.upstream.Stop() }

type skipWhileSource[T any] struct {
	upstream  *Iterator[T]
	predicate func(T) bool
	skipping  bool
}

func (s *skipWhileSource[T]) Pull() (T, bool) {
	if !s.skipping {
		return s.upstream.Pull()
	}
	for {
		v, ok := s.upstream.Pull()
		if !ok {
			return v, false
		}
		if !s.predicate(v) {
			s.skipping = false
			return v, true
		}
	}
}

func (s *skipWhileSource[T]) Stop() { s.upstream.Stop() }
