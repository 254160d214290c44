// SPDX-License-Identifier: MIT

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/ordering"
)

// arrow builds an n×n matrix with a dense first row and column plus the diagonal.
func arrow(t *testing.T, n int) *matrix.CompCol[float64] {
	t.Helper()
	tr, err := matrix.NewTriplet[float64](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Set(i, i, 4))
		require.NoError(t, tr.Set(0, i, 1))
		require.NoError(t, tr.Set(i, 0, 1))
	}
	a, err := tr.ToCompCol()
	require.NoError(t, err)

	return a
}

// scatter is the 4×4 permutation-like matrix with one entry per column.
func scatter(t *testing.T) *matrix.CompCol[float64] {
	t.Helper()
	a, err := matrix.CompColFromRaw(matrix.CompColRaw[float64]{
		NumRows:    4,
		Values:     []float64{3, -1, -8, 2},
		RowIndices: []int{2, 1, 3, 0},
		ColOffsets: []int{0, 1, 2, 3, 4},
	})
	require.NoError(t, err)

	return a
}

// TestColumnPerm_AlwaysPermutation: every method yields a bijection.
func TestColumnPerm_AlwaysPermutation(t *testing.T) {
	a := arrow(t, 6)
	for _, m := range []ordering.Method{ordering.Natural, ordering.MMDAtA, ordering.MMDAtPlusA, ordering.ColAMD} {
		t.Run(m.String(), func(t *testing.T) {
			p, err := ordering.ColumnPerm(m, a)
			require.NoError(t, err)
			require.NoError(t, p.Validate(6))
		})
	}
}

// TestMMDAtPlusA_ArrowHubLast: the dense hub is eliminated last.
func TestMMDAtPlusA_ArrowHubLast(t *testing.T) {
	p, err := ordering.ColumnPerm(ordering.MMDAtPlusA, arrow(t, 5))
	require.NoError(t, err)
	require.Equal(t, matrix.Perm{4, 0, 1, 2, 3}, p)
}

// TestColAMD_ArrowHubLast: the approximate score also pushes the hub back.
func TestColAMD_ArrowHubLast(t *testing.T) {
	p, err := ordering.ColumnPerm(ordering.ColAMD, arrow(t, 5))
	require.NoError(t, err)
	require.Equal(t, 4, p[0])
}

// TestOrderings_NoCouplingKeepsNatural: without shared rows every column ties.
func TestOrderings_NoCouplingKeepsNatural(t *testing.T) {
	a := scatter(t)
	for _, m := range []ordering.Method{ordering.MMDAtA, ordering.ColAMD} {
		p, err := ordering.ColumnPerm(m, a)
		require.NoError(t, err)
		require.True(t, p.IsIdentity(), m.String())
	}
}

// TestColumnPerm_Errors covers the rectangular and unknown cases.
func TestColumnPerm_Errors(t *testing.T) {
	tr, _ := matrix.NewTriplet[float64](2, 3)
	require.NoError(t, tr.Set(0, 0, 1))
	a, _ := tr.ToCompCol()

	_, err := ordering.ColumnPerm(ordering.MMDAtPlusA, a)
	require.ErrorIs(t, err, ordering.ErrNotSquare)

	p, err := ordering.ColumnPerm(ordering.MMDAtA, a) // rectangular is fine on AᵀA
	require.NoError(t, err)
	require.NoError(t, p.Validate(3))

	_, err = ordering.ColumnPerm(ordering.Method(42), a)
	require.ErrorIs(t, err, ordering.ErrUnknownMethod)

	_, err = ordering.ColumnPerm[float64](ordering.Natural, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
