// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnrscott/csuperlu/matrix"
)

// randomTriplet fills roughly density*rows*cols cells with values in [1,2).
func randomTriplet(rng *rand.Rand, rows, cols int, density float64) *matrix.Triplet[float64] {
	m, _ := matrix.NewTriplet[float64](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				_ = m.Set(i, j, 1+rng.Float64())
			}
		}
	}

	return m
}

// TestToCompCol_ValueAgreement: every cell of the view equals the triplet cell,
// and offsets have cols+1 non-decreasing entries ending at nnz.
func TestToCompCol_ValueAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		tr := randomTriplet(rng, rows, cols, 0.3)

		a, err := tr.ToCompCol()
		require.NoError(t, err)

		offs := a.ColOffsets()
		require.Len(t, offs, cols+1)
		require.Zero(t, offs[0])
		require.Equal(t, tr.NNZ(), offs[cols])
		for j := 1; j < len(offs); j++ {
			require.LessOrEqual(t, offs[j-1], offs[j])
		}

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				want, _ := tr.Get(i, j)
				got, err := a.Value(i, j)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		}
	}
}

// TestToCompCol_EmptyColumns repeats the running count for empty columns.
func TestToCompCol_EmptyColumns(t *testing.T) {
	tr, _ := matrix.NewTriplet[float64](3, 4)
	require.NoError(t, tr.Set(2, 1, 5))
	require.NoError(t, tr.Set(0, 1, 6))

	a, err := tr.ToCompCol()
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 2, 2, 2}, a.ColOffsets())
	require.Equal(t, []int{0, 2}, a.RowIndices())
	require.Equal(t, []float64{6, 5}, a.Values())

	empty, _ := matrix.NewTriplet[float64](0, 0)
	e, err := empty.ToCompCol()
	require.NoError(t, err)
	require.Equal(t, []int{0}, e.ColOffsets())
}

// TestCompCol_DenseAndPermute checks Dense expansion and both permutations.
func TestCompCol_DenseAndPermute(t *testing.T) {
	tr, _ := matrix.NewTriplet[float64](2, 2)
	require.NoError(t, tr.Set(0, 0, 1))
	require.NoError(t, tr.Set(1, 0, 2))
	require.NoError(t, tr.Set(1, 1, 3))
	a, _ := tr.ToCompCol()

	d, err := a.Dense()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 0, 3}, d.ColumnMajorValues())

	swap := matrix.Perm{1, 0}
	pc, err := a.PermuteCols(swap) // column 0 moves to 1
	require.NoError(t, err)
	v, _ := pc.Value(1, 0)
	require.Equal(t, 3.0, v)
	require.NoError(t, pc.Check())

	pr, err := a.PermuteRows(swap) // row 0 moves to 1
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, pr.RowIndices())
	require.Equal(t, []float64{2, 1, 3}, pr.Values())

	_, err = a.PermuteRows(matrix.Perm{0, 0})
	require.ErrorIs(t, err, matrix.ErrNotPermutation)
}
