package dominosort

import (
	"fmt"

	"github.com/katalvlaran/dominosort/metric"
)

// Item is one domino: the algorithm only reorders items, it never mutates them.
type Item struct {
	Head metric.Vector
	Tail metric.Vector
}

// Loss returns Σ m(items[i].Tail, items[i+1].Head) over consecutive pairs.
// Fewer than two items have zero loss.
func Loss(items []Item, m metric.Metric) (float64, error) {
	if m == nil {
		return 0, ErrNilMetric
	}
	var (
		total, d float64
		err      error
		i        int
	)
	for i = 0; i+1 < len(items); i++ {
		if d, err = metric.Check(m, items[i].Tail, items[i+1].Head); err != nil {
			return 0, fmt.Errorf("dominosort: loss tail[%d]→head[%d]: %w", i, i+1, err)
		}
		total += d
	}

	return total, nil
}

// Permute returns items reordered by order (a permutation of indices).
func Permute(items []Item, order []int) []Item {
	out := make([]Item, len(order))
	var k int
	for k = range order {
		out[k] = items[order[k]]
	}

	return out
}

// costVector returns the flattened link costs c[i*n+j] = m(tail_i, head_j).
// Self links cost 0; the constraints forbid them anyway.
func costVector(items []Item, m metric.Metric) ([]float64, error) {
	n := len(items)
	c := make([]float64, n*n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if c[i*n+j], err = metric.Check(m, items[i].Tail, items[j].Head); err != nil {
				return nil, fmt.Errorf("dominosort: cost tail[%d]→head[%d]: %w", i, j, err)
			}
		}
	}

	return c, nil
}
