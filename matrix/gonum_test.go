// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/johnrscott/csuperlu/matrix"
)

// TestGonum_RoundTrip moves a column-major Dense through *mat.Dense.
func TestGonum_RoundTrip(t *testing.T) {
	d, err := matrix.DenseFromColumns([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	require.NoError(t, err)

	g, err := matrix.DenseToGonum(d)
	require.NoError(t, err)
	require.Equal(t, 5.0, g.At(0, 2))
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	back := matrix.DenseFromGonum(g)
	require.Equal(t, d.ColumnMajorValues(), back.ColumnMajorValues())

	empty, _ := matrix.NewDense[float64](0, 1)
	_, err = matrix.DenseToGonum(empty)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestGonum_CompColView lets gonum multiply a sparse matrix directly.
func TestGonum_CompColView(t *testing.T) {
	raw := example5x5()
	a, err := matrix.CompColFromRaw(raw)
	require.NoError(t, err)

	v := matrix.AsGonum(a)
	require.Equal(t, 21.0, v.At(3, 4))
	require.Equal(t, 21.0, v.T().At(4, 3))
	require.Panics(t, func() { v.At(5, 0) })

	x := []float64{1, 2, 3, 4, 5}
	var y mat.VecDense
	y.MulVec(v, mat.NewVecDense(5, x))
	want, err := a.Multiply(x)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, y.RawVector().Data, 1e-12)

	back, err := matrix.CompColFromGonum(v)
	require.NoError(t, err)
	require.True(t, a.SamePattern(back))
	require.Equal(t, raw.Values, back.Values())
}

// TestComplexDenseToGonum covers the complex128 bridge.
func TestComplexDenseToGonum(t *testing.T) {
	d, _ := matrix.NewVector(1+2i, 3-1i)
	g, err := matrix.ComplexDenseToGonum(d)
	require.NoError(t, err)
	require.Equal(t, 3-1i, g.At(1, 0))
}
