package seq_test

import (
	"fmt"
	"slices"

	"github.com/charmingruby/lazyseq/seq"
)

func ExampleIterator_pipeline() {
	it := seq.Of(1, 2, 3, 4, 5, 6).
		Filter(func(v int) bool { return v%2 == 0 }).
		Take(2)
	doubled := seq.Map(it, func(v int) int { return v * 10 })
	fmt.Println(seq.Collect(doubled, slices.Collect[int]))
	// Output:
	// [20 40]
}

func ExampleIterator_Values() {
	it := seq.Range(0, 5)
	it.Next()
	for v := range it.Values() {
		fmt.Print(v, " ")
	}
	fmt.Println(it.Next())
	// Output:
	// 1 2 3 4 None
}

func ExampleChunks() {
	for chunk := range seq.Chunks(seq.Of(1, 1, 2, -2, 6, 0, 3, 1), 3).Values() {
		fmt.Println(seq.ToSlice(chunk))
	}
	// Output:
	// [1 1 2]
	// [-2 6 0]
	// [3 1]
}

func ExampleCartesianProduct() {
	for p := range seq.CartesianProduct(seq.Of(0, 1), seq.FromSlice([]rune("ab"))).Values() {
		fmt.Printf("(%d,%c) ", p.Left, p.Right)
	}
	fmt.Println()
	// Output:
	// (0,a) (0,b) (1,a) (1,b)
}
