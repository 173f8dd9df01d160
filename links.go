package dominosort

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/dominosort/matrix"
)

// errBrokenPath signals an integral, acyclic link matrix that is not a single
// Hamiltonian path. The base constraints make this unreachable.
var errBrokenPath = errors.New("dominosort: link matrix is not a Hamiltonian path")

// fractionalIndex returns the first link variable farther than tol from an
// integer, or -1 when x is integral.
func fractionalIndex(x []float64, tol float64) int {
	var k int
	for k = range x {
		if math.Abs(x[k]-math.Round(x[k])) > tol {
			return k
		}
	}

	return -1
}

// linkMatrix renders a link vector as a rounded n×n 0/1 matrix. It is
// passed to zap.Stringer, so nothing is built unless the trace is written.
type linkMatrix struct {
	x []float64
	n int
}

func (l linkMatrix) String() string {
	r := make([]float64, len(l.x))
	var k int
	for k = range l.x {
		r[k] = math.Round(l.x[k])
	}
	d, err := matrix.NewDenseFrom(l.n, l.n, r)
	if err != nil {
		return err.Error()
	}

	return d.String()
}

// successors reads an integral link vector into succ[i] = j (or -1).
// With out-degree ≤ 1 every item has at most one successor.
func successors(x []float64, n int) []int {
	succ := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		succ[i] = -1
		for j = 0; j < n; j++ {
			if math.Round(x[i*n+j]) == 1 {
				succ[i] = j
				break
			}
		}
	}

	return succ
}

// shortestCycle returns the shortest cycle in the integral link graph of x,
// or nil when the graph is acyclic.
//
// Implementation:
//   - Stage 1: unit-weight distance matrix with a +Inf diagonal.
//   - Stage 2: Floyd–Warshall; d[i][i] becomes the shortest round trip through i.
//   - Stage 3: among vertices with the minimal finite round trip, retrace each
//     cycle, rotate it to start at its smallest index, and keep the
//     lexicographically smallest sequence.
//
// Complexity: Time O(n³), Space O(n²).
func shortestCycle(x []float64, n int) ([]int, error) {
	d, err := matrix.NewDistance(n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		if err = d.Set(i, i, inf); err != nil {
			return nil, err
		}
		for j = 0; j < n; j++ {
			if math.Round(x[i*n+j]) == 1 {
				if err = d.Set(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, err
	}

	best := inf
	var v float64
	for i = 0; i < n; i++ {
		v, _ = d.At(i, i)
		if v < best {
			best = v
		}
	}
	if math.IsInf(best, 1) {
		return nil, nil
	}

	succ := successors(x, n)
	var cycle, cand []int
	for i = 0; i < n; i++ {
		if v, _ = d.At(i, i); v != best {
			continue
		}
		if cand = canonicalCycle(retraceCycle(succ, i)); cycle == nil || slices.Compare(cand, cycle) < 0 {
			cycle = cand
		}
	}

	return cycle, nil
}

// retraceCycle follows successors from start until it returns to start.
func retraceCycle(succ []int, start int) []int {
	cycle := []int{start}
	for v := succ[start]; v != start && v >= 0 && len(cycle) <= len(succ); v = succ[v] {
		cycle = append(cycle, v)
	}

	return cycle
}

// canonicalCycle rotates a cycle to start at its smallest index.
func canonicalCycle(cycle []int) []int {
	k := slices.Index(cycle, slices.Min(cycle))

	return append(slices.Clone(cycle[k:]), cycle[:k]...)
}

// retracePath returns the Hamiltonian path encoded by an integral, acyclic x,
// starting at the item with no incoming link.
func retracePath(x []float64, n int) ([]int, error) {
	succ := successors(x, n)
	indeg := make([]int, n)
	var i int
	for i = range succ {
		if succ[i] >= 0 {
			indeg[succ[i]]++
		}
	}
	start := slices.Index(indeg, 0)
	if start < 0 {
		return nil, errBrokenPath
	}

	path := make([]int, 0, n)
	seen := make([]bool, n)
	for v := start; v >= 0; v = succ[v] {
		if seen[v] {
			return nil, errBrokenPath
		}
		seen[v] = true
		path = append(path, v)
	}
	if len(path) != n {
		return nil, fmt.Errorf("visited %d of %d items: %w", len(path), n, errBrokenPath)
	}

	return path, nil
}
