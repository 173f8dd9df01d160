package dominosort_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dominosort"
	"github.com/katalvlaran/dominosort/metric"
)

// ExampleSort chains three dominoes so that every tail meets the next head.
func ExampleSort() {
	items := []dominosort.Item{
		{Head: metric.Scalar(0), Tail: metric.Scalar(5)},
		{Head: metric.Scalar(9), Tail: metric.Scalar(20)},
		{Head: metric.Scalar(5), Tail: metric.Scalar(9)},
	}

	sorted, err := dominosort.Sort(items, metric.Manhattan{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, it := range sorted {
		fmt.Println(it.Head[0], "->", it.Tail[0])
	}
	loss, _ := dominosort.Loss(sorted, metric.Manhattan{})
	fmt.Println("loss:", loss)

	// Output:
	// 0 -> 5
	// 5 -> 9
	// 9 -> 20
	// loss: 0
}

// ExampleSolve shows the search outcome on 2-D points under the L2 metric.
func ExampleSolve() {
	items := []dominosort.Item{
		{Head: metric.Vector{0, 0}, Tail: metric.Vector{3, 4}},
		{Head: metric.Vector{10, 10}, Tail: metric.Vector{20, 20}},
		{Head: metric.Vector{3, 4}, Tail: metric.Vector{10, 10}},
	}

	res, err := dominosort.Solve(items, metric.Euclidean{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", res.Order)
	fmt.Printf("loss: %.1f (input %.1f)\n", res.Loss, res.Baseline)
	fmt.Println("optimal:", res.Optimal)

	// Output:
	// order: [0 2 1]
	// loss: 0.0 (input 32.6)
	// optimal: true
}

// ExampleSort_fallback shows the warning returned when no relaxation succeeds.
func ExampleSort_fallback() {
	items := []dominosort.Item{
		{Head: metric.Scalar(0), Tail: metric.Scalar(5)},
		{Head: metric.Scalar(9), Tail: metric.Scalar(20)},
		{Head: metric.Scalar(5), Tail: metric.Scalar(9)},
	}

	sorted, err := dominosort.Sort(items, metric.Manhattan{}, dominosort.WithMaxIter(1))
	fmt.Println(errors.Is(err, dominosort.ErrNoSolution), len(sorted))

	// Output:
	// true 3
}
