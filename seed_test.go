package dominosort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveItem(t *testing.T) {
	p := []int{0, 1, 2, 3}
	require.Equal(t, []int{1, 2, 0, 3}, moveItem(nil, p, 0, 2))
	require.Equal(t, []int{1, 2, 3, 0}, moveItem(nil, p, 0, 3))
	require.Equal(t, []int{2, 0, 1, 3}, moveItem(nil, p, 2, 0))
	require.Equal(t, []int{0, 1, 2, 3}, p)
}

func TestWarmStart_FindsZeroChain(t *testing.T) {
	// Costs for 3 items where 2→0→1 is free and everything else costs 5.
	n := 3
	cost := []float64{
		0, 0, 5,
		5, 0, 5,
		0, 5, 0,
	}
	path, c := warmStart(cost, n, 1e-9)
	require.Equal(t, []int{2, 0, 1}, path)
	require.Zero(t, c)
	require.Zero(t, pathCost(cost, n, path))
}

func TestRelocate_ImprovesGreedyTrap(t *testing.T) {
	// Greedy from 0 takes 0→1 (1) then pays 1→2 (10).
	n := 3
	cost := []float64{
		0, 1, 4,
		4, 0, 10,
		1, 4, 0,
	}
	greedy := nearestSuccessorPath(cost, n, 0)
	require.Equal(t, []int{0, 1, 2}, greedy)
	require.Equal(t, 11.0, pathCost(cost, n, greedy))

	path, c := relocate(cost, n, greedy, 1e-9)
	require.Equal(t, 8.0, c)
	require.Equal(t, []int{1, 0, 2}, path)

	// The restart from item 2 reaches the global optimum.
	path, c = warmStart(cost, n, 1e-9)
	require.Equal(t, 2.0, c)
	require.Equal(t, []int{2, 0, 1}, path)
}
