package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dominosort/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 4.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_NumericPolicy(t *testing.T) {
	m, _ := matrix.NewDense(1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	d, err := matrix.NewDistance(2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, math.Inf(1)))
	require.ErrorIs(t, d.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	v, _ := d.At(1, 0)
	require.True(t, math.IsInf(v, 1))
	v, _ = d.At(1, 1)
	require.Zero(t, v)
}

func TestDense_NewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_RowView(t *testing.T) {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})

	view, err := m.RowView(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, view)
	view[2] = 9
	v, _ := m.At(0, 2)
	require.Equal(t, 9.0, v, "RowView must alias")

	_, err = m.RowView(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 7))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}
