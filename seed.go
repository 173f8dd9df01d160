// Package dominosort - warm start for the incumbent.
//
// A good initial incumbent lets the bound prune early. The seed is a
// nearest-successor path tried from every start item, polished by
// first-improvement relocation moves (remove one item, reinsert it at the
// best other position). Everything runs on the flattened cost vector and is
// deterministic: lower indices win ties.
//
// Complexity:
//   - Nearest successor from all starts: O(n³).
//   - One relocation pass: O(n³); passes are capped at n².
package dominosort

// pathCost sums cost[p[k]*n + p[k+1]] along p.
func pathCost(cost []float64, n int, p []int) float64 {
	var (
		s float64
		k int
	)
	for k = 0; k+1 < len(p); k++ {
		s += cost[p[k]*n+p[k+1]]
	}

	return s
}

// nearestSuccessorPath greedily extends a path from start.
func nearestSuccessorPath(cost []float64, n, start int) []int {
	path := make([]int, 1, n)
	path[0] = start
	used := make([]bool, n)
	used[start] = true
	var (
		cur, j, next int
		best         float64
	)
	for cur = start; len(path) < n; cur = next {
		next = -1
		for j = 0; j < n; j++ {
			if used[j] {
				continue
			}
			if next < 0 || cost[cur*n+j] < best {
				next, best = j, cost[cur*n+j]
			}
		}
		used[next] = true
		path = append(path, next)
	}

	return path
}

// relocate applies first-improvement single-item moves until none improves
// by more than eps or the pass cap is hit.
func relocate(cost []float64, n int, path []int, eps float64) ([]int, float64) {
	cur := append([]int(nil), path...)
	best := pathCost(cost, n, cur)
	buf := make([]int, 0, n)
	var (
		pass, from, to int
		c              float64
		improved       bool
	)
	for pass = 0; pass < n*n; pass++ {
		improved = false
	scan:
		for from = 0; from < n; from++ {
			for to = 0; to < n; to++ {
				if to == from {
					continue
				}
				buf = moveItem(buf[:0], cur, from, to)
				if c = pathCost(cost, n, buf); c < best-eps {
					copy(cur, buf)
					best, improved = c, true

					break scan
				}
			}
		}
		if !improved {
			break
		}
	}

	return cur, best
}

// moveItem writes into dst the path with the item at position from moved to
// position to.
func moveItem(dst, path []int, from, to int) []int {
	v := path[from]
	var k int
	for k = range path {
		if k == from {
			continue
		}
		if len(dst) == to {
			dst = append(dst, v)
		}
		dst = append(dst, path[k])
	}
	if len(dst) < len(path) {
		dst = append(dst, v)
	}

	return dst
}

// warmStart returns the best polished nearest-successor path over all starts.
func warmStart(cost []float64, n int, eps float64) ([]int, float64) {
	var (
		bestPath []int
		best     float64
		s        int
	)
	for s = 0; s < n; s++ {
		p, c := relocate(cost, n, nearestSuccessorPath(cost, n, s), eps)
		if bestPath == nil || c < best-eps {
			bestPath, best = p, c
		}
	}

	return bestPath, best
}
