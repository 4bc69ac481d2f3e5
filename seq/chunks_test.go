package seq_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyseq/seq"
)

var chunkData = []int{1, 1, 2, -2, 6, 0, 3, 1}

func TestChunksSumPerChunk(t *testing.T) {
	n := 0
	for chunk := range seq.Chunks(seq.FromSlice(chunkData), 3).Values() {
		require.Equal(t, 4, lo.Sum(seq.ToSlice(chunk)))
		n++
	}
	require.Equal(t, 3, n)
}

func TestChunksNext(t *testing.T) {
	chunks := seq.Chunks(seq.FromSlice(chunkData), 3)
	require.Equal(t, []int{1, 1, 2}, seq.ToSlice(chunks.Next().UnsafeGet()))
	require.Equal(t, []int{-2, 6, 0}, seq.ToSlice(chunks.Next().UnsafeGet()))
	require.Equal(t, []int{3, 1}, seq.ToSlice(chunks.Next().UnsafeGet()))
	require.True(t, chunks.Next().IsNone())
}

func TestChunksDiscardUnconsumedRemainder(t *testing.T) {
	chunks := seq.Chunks(seq.Range(0, 7), 3)
	first := chunks.Next().UnsafeGet()
	require.Equal(t, 0, first.Next().UnsafeGet())

	second := chunks.Next().UnsafeGet()
	require.Equal(t, []int{3, 4, 5}, seq.ToSlice(second))
	require.True(t, first.Next().IsNone(), "an abandoned chunk stays exhausted")

	third := chunks.Next().UnsafeGet()
	require.Equal(t, []int{6}, seq.ToSlice(third))
	require.True(t, chunks.Next().IsNone())
}

func TestChunksExactMultiple(t *testing.T) {
	chunks := seq.ToSlice(seq.Map(seq.Chunks(seq.Range(0, 6), 2), seq.ToSlice[int]))
	require.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 5}}, chunks)
	require.Equal(t, lo.Chunk(lo.Range(6), 2), chunks)
}

func TestChunksOfEmpty(t *testing.T) {
	require.Equal(t, 0, seq.Chunks(seq.Empty[int](), 4).Count())
}

func TestChunksAreLazy(t *testing.T) {
	src := &countingSource{values: []int{1, 2, 3, 4, 5}}
	chunks := seq.Chunks(seq.New[int](src), 2)
	require.Zero(t, src.pulls)
	first := chunks.Next().UnsafeGet()
	require.Equal(t, 1, src.pulls)
	require.Equal(t, []int{1, 2}, seq.ToSlice(first))
	require.Equal(t, 2, src.pulls)
}
