package seq_test

import (
	"testing"

	"github.com/go-softwarelab/common/pkg/types"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyseq/option"
	"github.com/charmingruby/lazyseq/seq"
)

var searchData = []int{1, 2, 3, 3, 4, 6, 7, 9}

func isEven(v int) bool { return v%2 == 0 }

func TestPositions(t *testing.T) {
	require.Equal(t, []int{1, 4, 5}, seq.ToSlice(seq.FromSlice(searchData).Positions(isEven)))
	require.Empty(t, seq.ToSlice(seq.Of(1, 3).Positions(isEven)))
}

func TestPositionsIsLazy(t *testing.T) {
	src := &countingSource{values: []int{1, 2, 3, 4}}
	it := seq.New[int](src).Positions(isEven)
	require.Zero(t, src.pulls)
	require.Equal(t, option.Some(1), it.Next())
	require.Equal(t, 2, src.pulls)
}

func TestFindPositions(t *testing.T) {
	got := seq.ToSlice(seq.FindPositions(seq.FromSlice(searchData), isEven))
	want := []types.Pair[int, int]{
		{Left: 1, Right: 2},
		{Left: 4, Right: 4},
		{Left: 5, Right: 6},
	}
	require.Equal(t, want, got)
}

func TestFindPosition(t *testing.T) {
	src := &countingSource{values: []int{1, 3, 4, 6}}
	it := seq.New[int](src)
	require.Equal(t, option.Some(types.Pair[int, int]{Left: 2, Right: 4}), it.FindPosition(isEven))
	require.Equal(t, 3, src.pulls)
	require.True(t, seq.Of(1, 3).FindPosition(isEven).IsNone())
}

func TestCartesianProduct(t *testing.T) {
	got := seq.ToSlice(seq.CartesianProduct(seq.Of(0, 1), seq.FromSlice([]rune("ab"))))
	want := []types.Pair[int, rune]{
		{Left: 0, Right: 'a'},
		{Left: 0, Right: 'b'},
		{Left: 1, Right: 'a'},
		{Left: 1, Right: 'b'},
	}
	require.Equal(t, want, got)
}

func TestCartesianProductEmptySides(t *testing.T) {
	require.Empty(t, seq.ToSlice(seq.CartesianProduct(seq.Of(1, 2), seq.Empty[string]())))
	require.Empty(t, seq.ToSlice(seq.CartesianProduct(seq.Empty[int](), seq.Of("x"))))
}

func TestCartesianProductConsumesOuterOnce(t *testing.T) {
	outer := &countingSource{values: []int{1, 2, 3}}
	product := seq.CartesianProduct(seq.New[int](outer), seq.Of("x", "y"))
	require.Zero(t, outer.pulls)
	require.Equal(t, 6, product.Count())
	require.Equal(t, 4, outer.pulls)
}
