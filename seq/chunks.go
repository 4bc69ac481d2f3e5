package seq

// Chunks splits the iterator into consecutive, non-overlapping chunks of at
// most size elements. Each chunk is itself a lazy iterator reading from the
// same upstream; pulling the next chunk discards whatever the previous one
// left unconsumed, so chunk boundaries stay exact. Panics if size < 1.
//
// Example:
//
//	for chunk := range seq.Chunks(seq.Range(0, 5), 2).Values() {
//		fmt.Println(seq.ToSlice(chunk)) // [0 1] [2 3] [4]
//	}
func Chunks[T any](it *Iterator[T], size int) *Iterator[*Iterator[T]] {
	if size < 1 {
		panic(invalidArgument("chunk size must be >= 1, got %d", size))
	}
	return New[*Iterator[T]](&chunksSource[T]{upstream: it, size: size})
}

type chunksSource[T any] struct {
	upstream *Iterator[T]
	size     int
	current  *chunkSource[T]
}

func (s *chunksSource[T]) Pull() (*Iterator[T], bool) {
	if s.current != nil {
		s.current.discard()
		s.current = nil
	}
	// The head element is pulled eagerly: a chunk is only handed out when it
	// is non-empty.
	head, ok := s.upstream.Pull()
	if !ok {
		return nil, false
	}
	s.current = &chunkSource[T]{upstream: s.upstream, head: head, hasHead: true, remaining: s.size}
	return New[T](s.current), true
}

func (s *chunksSource[T]) Stop() { s.upstream.Stop() }

// chunkSource reads up to remaining elements from the shared upstream.
type chunkSource[T any] struct {
	upstream  *Iterator[T]
	head      T
	hasHead   bool
	remaining int
}

func (c *chunkSource[T]) Pull() (T, bool) {
	var zero T
	if c.remaining <= 0 {
		return zero, false
	}
	c.remaining--
	if c.hasHead {
		v := c.head
		c.head, c.hasHead = zero, false
		return v, true
	}
	v, ok := c.upstream.Pull()
	if !ok {
		c.remaining = 0
		return zero, false
	}
	return v, true
}

func (c *chunkSource[T]) discard() {
	for c.remaining > 0 {
		if _, ok := c.Pull(); !ok {
			return
		}
	}
}
