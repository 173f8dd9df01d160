package lp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dominosort/lp"
	"github.com/katalvlaran/dominosort/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func dense(t *testing.T, rows, cols int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return m
}

func TestSolve_InequalityWithUpperBound(t *testing.T) {
	// min −2x − y  s.t. x + y ≤ 4, 0 ≤ x ≤ 3, y ≥ 0  →  x=3, y=1, z=−7.
	res, err := lp.Solve(lp.Problem{
		C:     []float64{-2, -1},
		Aub:   dense(t, 1, 2, 1, 1),
		Bub:   []float64{4},
		Upper: []float64{3, math.Inf(1)},
	})
	require.NoError(t, err)
	require.True(t, res.Success(), res.Message)
	require.InDeltaSlice(t, []float64{3, 1}, res.X, tol)
	require.InDelta(t, -7, res.Objective, tol)
	require.Positive(t, res.Iterations)
}

func TestSolve_Equality(t *testing.T) {
	// min x + 2y  s.t. x + y = 1, x,y ∈ [0,1].
	res, err := lp.Solve(lp.Problem{
		C:     []float64{1, 2},
		Aeq:   dense(t, 1, 2, 1, 1),
		Beq:   []float64{1},
		Upper: []float64{1, 1},
	})
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	require.InDeltaSlice(t, []float64{1, 0}, res.X, tol)
	require.InDelta(t, 1, res.Objective, tol)
}

func TestSolve_LowerBoundShiftAndNegativeRHS(t *testing.T) {
	// min x + y  s.t. −x − y ≤ −3, 1 ≤ x ≤ 5, 0 ≤ y ≤ 1  →  z=3 with y free in [0,1].
	res, err := lp.Solve(lp.Problem{
		C:     []float64{1, 1},
		Aub:   dense(t, 1, 2, -1, -1),
		Bub:   []float64{-3},
		Lower: []float64{1, 0},
		Upper: []float64{5, 1},
	})
	require.NoError(t, err)
	require.True(t, res.Success(), res.Message)
	require.InDelta(t, 3, res.Objective, tol)
	require.GreaterOrEqual(t, res.X[0], 1-tol)
	require.InDelta(t, 3, res.X[0]+res.X[1], tol)
}

func TestSolve_Infeasible(t *testing.T) {
	res, err := lp.Solve(lp.Problem{
		C:     []float64{1, 1},
		Aeq:   dense(t, 1, 2, 1, 1),
		Beq:   []float64{3},
		Upper: []float64{1, 1},
	})
	require.NoError(t, err)
	require.Equal(t, lp.Infeasible, res.Status)
	require.False(t, res.Success())
	require.Nil(t, res.X)
	require.Contains(t, res.Message, "infeasible")

	res, err = lp.Solve(lp.Problem{C: []float64{1}, Lower: []float64{2}, Upper: []float64{1}})
	require.NoError(t, err)
	require.Equal(t, lp.Infeasible, res.Status)
}

func TestSolve_Unbounded(t *testing.T) {
	res, err := lp.Solve(lp.Problem{C: []float64{-1}})
	require.NoError(t, err)
	require.Equal(t, lp.Unbounded, res.Status)
	require.Equal(t, "unbounded", res.Status.String())
}

func TestSolve_IterationLimit(t *testing.T) {
	p := lp.Problem{
		C:     []float64{1, 1},
		Aeq:   dense(t, 2, 2, 1, 1, 1, -1),
		Beq:   []float64{1, 0},
		Upper: []float64{1, 1},
	}
	res, err := lp.Solve(p, lp.WithMaxIter(1))
	require.NoError(t, err)
	require.Equal(t, lp.IterationLimit, res.Status)
	require.Contains(t, res.Message, "iteration limit")
	require.Equal(t, 1, res.Iterations)

	res, err = lp.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Success(), res.Message)
	require.InDeltaSlice(t, []float64{0.5, 0.5}, res.X, tol)
}

func TestSolve_RedundantEqualityRows(t *testing.T) {
	// The second row duplicates the first; its artificial stays basic at zero.
	res, err := lp.Solve(lp.Problem{
		C:     []float64{2, 1},
		Aeq:   dense(t, 2, 2, 1, 1, 2, 2),
		Beq:   []float64{1, 2},
		Upper: []float64{1, 1},
	})
	require.NoError(t, err)
	require.True(t, res.Success(), res.Message)
	require.InDeltaSlice(t, []float64{0, 1}, res.X, tol)
}

func TestSolve_MalformedInput(t *testing.T) {
	_, err := lp.Solve(lp.Problem{})
	require.ErrorIs(t, err, lp.ErrShape)

	_, err = lp.Solve(lp.Problem{C: []float64{1, 1}, Aeq: dense(t, 1, 3, 1, 1, 1), Beq: []float64{1}})
	require.ErrorIs(t, err, lp.ErrShape)

	_, err = lp.Solve(lp.Problem{C: []float64{1}, Beq: []float64{1}})
	require.ErrorIs(t, err, lp.ErrShape)

	_, err = lp.Solve(lp.Problem{C: []float64{math.NaN()}})
	require.ErrorIs(t, err, lp.ErrNaN)

	_, err = lp.Solve(lp.Problem{C: []float64{1}, Lower: []float64{math.Inf(-1)}})
	require.ErrorIs(t, err, lp.ErrUnsupportedBound)

	_, err = lp.Solve(lp.Problem{C: []float64{1}}, lp.WithTolerance(0))
	require.ErrorIs(t, err, lp.ErrBadOption)

	_, err = lp.Solve(lp.Problem{C: []float64{1}}, lp.WithMaxIter(-1))
	require.ErrorIs(t, err, lp.ErrBadOption)
}
