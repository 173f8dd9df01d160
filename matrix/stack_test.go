package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dominosort/matrix"
	"github.com/stretchr/testify/require"
)

func TestVStack_ConcatenatesWithoutMutation(t *testing.T) {
	a, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	b, _ := matrix.NewDenseFrom(2, 2, []float64{3, 4, 5, 6})

	out, err := matrix.VStack(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, out.Rows())
	require.Equal(t, "[1, 2]\n[3, 4]\n[5, 6]\n", out.String())
	require.Equal(t, 1, a.Rows())
	require.Equal(t, 2, b.Rows())

	require.NoError(t, out.Set(0, 0, 42))
	v, _ := a.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestVStack_NilOperands(t *testing.T) {
	out, err := matrix.VStack(nil, nil)
	require.NoError(t, err)
	require.Nil(t, out)

	a, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	out, err = matrix.VStack(nil, a)
	require.NoError(t, err)
	require.Equal(t, a.String(), out.String())
	require.NotSame(t, a, out)
}

func TestVStack_ColumnMismatch(t *testing.T) {
	a, _ := matrix.NewDense(1, 2)
	b, _ := matrix.NewDense(1, 3)
	_, err := matrix.VStack(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAppendRow(t *testing.T) {
	m, err := matrix.AppendRow(nil, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())

	m, err = matrix.AppendRow(m, []float64{0, 1})
	require.NoError(t, err)
	require.Equal(t, "[1, 1]\n[0, 1]\n", m.String())

	_, err = matrix.AppendRow(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AppendRow(m, []float64{math.NaN(), 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, 2, m.Rows())

	_, err = matrix.AppendRow(nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
