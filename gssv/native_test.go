// SPDX-License-Identifier: MIT

package gssv_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/johnrscott/csuperlu/gssv"
	"github.com/johnrscott/csuperlu/matrix"
)

// randomSystem returns a sparse, diagonally dominant n×n matrix.
func randomSystem(t *testing.T, rng *rand.Rand, n int, density float64) *matrix.CompCol[float64] {
	t.Helper()
	tr, err := matrix.NewTriplet[float64](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				require.NoError(t, tr.Set(i, j, float64(n)+rng.Float64()))
			case rng.Float64() < density:
				require.NoError(t, tr.Set(i, j, rng.Float64()*2-1))
			}
		}
	}
	a, err := tr.ToCompCol()
	require.NoError(t, err)

	return a
}

// reconstruct checks Pr·A·Pc = L·U with gonum as the dense oracle.
func reconstruct(t *testing.T, a, l, u *matrix.CompCol[float64], permC, permR matrix.Perm) {
	t.Helper()
	pa, err := a.PermuteRows(permR)
	require.NoError(t, err)
	pa, err = pa.PermuteCols(permC)
	require.NoError(t, err)

	var lu mat.Dense
	lu.Mul(matrix.AsGonum(l), matrix.AsGonum(u))
	require.True(t, mat.EqualApprox(matrix.AsGonum(pa), &lu, 1e-10), "Pr·A·Pc != L·U")
}

// factorShape checks L is unit lower (diagonal first) and U upper (diagonal last).
func factorShape(t *testing.T, l, u *matrix.CompCol[float64]) {
	t.Helper()
	for k := 0; k < l.NumCols(); k++ {
		rows, vals := l.Column(k)
		require.Equal(t, k, rows[0])
		require.Equal(t, 1.0, vals[0])
		for _, r := range rows[1:] {
			require.Greater(t, r, k)
		}
		rows, _ = u.Column(k)
		require.Equal(t, k, rows[len(rows)-1])
	}
}

// TestGssv_ArgumentChecks maps each invalid argument to its negative info.
func TestGssv_ArgumentChecks(t *testing.T) {
	e := gssv.NewNative[float64]()
	a := randomSystem(t, rand.New(rand.NewSource(1)), 3, 0.3)
	rect, _ := matrix.CompColFromRaw(matrix.CompColRaw[float64]{NumRows: 2, ColOffsets: []int{0, 0, 0, 0}})
	b, _ := matrix.NewDense[float64](3, 1)
	shortB, _ := matrix.NewDense[float64](2, 1)
	good := gssv.DefaultOptions()
	badThresh := good
	badThresh.DiagPivotThresh = 2
	myC := good
	myC.ColPerm = gssv.MyPermC
	myR := good
	myR.RowPerm = gssv.MyPermR

	cases := []struct {
		name string
		opts *gssv.Options
		a    *matrix.CompCol[float64]
		pc   matrix.Perm
		pr   matrix.Perm
		b    *matrix.Dense[float64]
		want int
	}{
		{"nil options", nil, a, make(matrix.Perm, 3), make(matrix.Perm, 3), b, -1},
		{"threshold", &badThresh, a, make(matrix.Perm, 3), make(matrix.Perm, 3), b, -1},
		{"nil A", &good, nil, make(matrix.Perm, 3), make(matrix.Perm, 3), b, -2},
		{"rectangular A", &good, rect, make(matrix.Perm, 3), make(matrix.Perm, 3), b, -2},
		{"permC length", &good, a, make(matrix.Perm, 2), make(matrix.Perm, 3), b, -3},
		{"permC content", &myC, a, matrix.Perm{0, 0, 1}, make(matrix.Perm, 3), b, -3},
		{"permR content", &myR, a, make(matrix.Perm, 3), matrix.Perm{2, 2, 1}, b, -4},
		{"B rows", &good, a, make(matrix.Perm, 3), make(matrix.Perm, 3), shortB, -7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, u, info := e.Gssv(tc.opts, tc.a, tc.pc, tc.pr, tc.b, nil)
			require.Equal(t, tc.want, info)
			require.Nil(t, l)
			require.Nil(t, u)
		})
	}
	require.Zero(t, e.Live())
}

// TestGssv_Reconstruct factors random systems under every ordering.
func TestGssv_Reconstruct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, cp := range []gssv.ColPerm{gssv.Natural, gssv.MMDAtA, gssv.MMDAtPlusA, gssv.ColAMD} {
		t.Run(cp.String(), func(t *testing.T) {
			for trial := 0; trial < 5; trial++ {
				n := 3 + rng.Intn(10)
				a := randomSystem(t, rng, n, 0.25)
				want := make([]float64, n)
				for i := range want {
					want[i] = float64(i + 1)
				}
				rhs, err := a.Multiply(want)
				require.NoError(t, err)
				b, _ := matrix.NewVector(rhs...)

				opts := gssv.DefaultOptions()
				opts.ColPerm = cp
				permC, permR := make(matrix.Perm, n), make(matrix.Perm, n)
				e := gssv.NewNative[float64]()
				l, u, info := e.Gssv(&opts, a, permC, permR, b, nil)
				require.Zero(t, info)
				require.NoError(t, permC.Validate(n))
				require.NoError(t, permR.Validate(n))
				factorShape(t, l, u)
				reconstruct(t, a, l, u, permC, permR)
				require.InDeltaSlice(t, want, b.ColumnMajorValues(), 1e-8)

				require.Equal(t, matrix.SolverOwnsBuffers, l.Ownership())
				require.Equal(t, 2, e.Live())
				require.NoError(t, l.Release())
				require.NoError(t, u.Release())
				require.Zero(t, e.Live())
			}
		})
	}
}

// TestGssv_ZeroPivotContinues: a zero column reports k+1 and keeps factoring.
func TestGssv_ZeroPivotContinues(t *testing.T) {
	tr, _ := matrix.NewTriplet[float64](3, 3)
	require.NoError(t, tr.Set(0, 0, 2))
	require.NoError(t, tr.Set(2, 2, 5))
	require.NoError(t, tr.Set(0, 2, 1))
	a, _ := tr.ToCompCol()
	b, _ := matrix.NewVector(1.0, 2.0, 3.0)

	opts := gssv.DefaultOptions()
	opts.ColPerm = gssv.MyPermC
	permC, permR := matrix.IdentityPerm(3), make(matrix.Perm, 3)
	l, u, info := gssv.NewNative[float64]().Gssv(&opts, a, permC, permR, b, nil)
	require.Equal(t, 2, info) // column 1 is empty
	require.NotNil(t, l)
	require.NotNil(t, u)
	require.Equal(t, matrix.Perm{0, 1, 2}, permR)
	require.Equal(t, []float64{1, 2, 3}, b.ColumnMajorValues()) // B untouched

	d, err := u.Value(1, 1)
	require.NoError(t, err)
	require.Zero(t, d)
	reconstruct(t, a, l, u, permC, permR)
}

// TestGssv_Workspace reports n + bytes and returns no factors.
func TestGssv_Workspace(t *testing.T) {
	a := randomSystem(t, rand.New(rand.NewSource(3)), 6, 0.3)
	b, _ := matrix.NewDense[float64](6, 1)
	opts := gssv.DefaultOptions()
	opts.WorkspaceBytes = 1

	e := gssv.NewNative[float64]()
	l, u, info := e.Gssv(&opts, a, make(matrix.Perm, 6), make(matrix.Perm, 6), b, nil)
	require.Greater(t, info, 6)
	require.Nil(t, l)
	require.Nil(t, u)
	require.Zero(t, e.Live())
}

// TestGssv_UserRowPivots: with threshold 0 every non-zero preferred pivot is
// accepted, so the user's row permutation survives.
func TestGssv_UserRowPivots(t *testing.T) {
	tr, _ := matrix.NewTriplet[float64](2, 2)
	require.NoError(t, tr.Set(0, 0, 1))
	require.NoError(t, tr.Set(1, 0, 10))
	require.NoError(t, tr.Set(0, 1, 3))
	require.NoError(t, tr.Set(1, 1, 4))
	a, _ := tr.ToCompCol()

	opts := gssv.DefaultOptions()
	opts.ColPerm = gssv.MyPermC
	opts.RowPerm = gssv.MyPermR
	opts.DiagPivotThresh = 0
	permC, permR := matrix.IdentityPerm(2), matrix.IdentityPerm(2)
	b, _ := matrix.NewVector(7.0, 18.0) // x = (1, 2)
	l, u, info := gssv.NewNative[float64]().Gssv(&opts, a, permC, permR, b, nil)
	require.Zero(t, info)
	require.Equal(t, matrix.Perm{0, 1}, permR)
	require.InDeltaSlice(t, []float64{1, 2}, b.ColumnMajorValues(), 1e-12)
	reconstruct(t, a, l, u, permC, permR)

	opts.RowPerm = gssv.NoRowPerm // partial pivoting picks the larger 10
	opts.DiagPivotThresh = 1
	b, _ = matrix.NewVector(7.0, 18.0)
	_, _, info = gssv.NewNative[float64]().Gssv(&opts, a, permC, permR, b, nil)
	require.Zero(t, info)
	require.Equal(t, matrix.Perm{1, 0}, permR)
}

// TestGssv_StatReuse accumulates calls and records factor sizes.
func TestGssv_StatReuse(t *testing.T) {
	a := randomSystem(t, rand.New(rand.NewSource(5)), 5, 0.2)
	stat := gssv.NewStat()
	opts := gssv.DefaultOptions()
	e := gssv.NewNative[float64]()
	for i := 0; i < 2; i++ {
		b, _ := matrix.NewDense[float64](5, 2)
		l, u, info := e.Gssv(&opts, a, make(matrix.Perm, 5), make(matrix.Perm, 5), b, stat)
		require.Zero(t, info)
		require.Equal(t, l.NNZ(), stat.NnzL)
		require.Equal(t, u.NNZ(), stat.NnzU)
	}
	require.Equal(t, 2, stat.Calls)
	require.Positive(t, stat.Flops[gssv.PhaseSolve])
	stat.Reset()
	require.Zero(t, stat.Calls)
}

// TestGssv_Precisions solves the same system in all four scalar kinds.
func TestGssv_Precisions(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		x := solveDiag[float32](t, []float32{2, 4}, []float32{2, 8})
		require.InDeltaSlice(t, []float32{1, 2}, x, 1e-6)
	})
	t.Run("complex64", func(t *testing.T) {
		x := solveDiag[complex64](t, []complex64{1i, 2}, []complex64{1i, 4})
		require.Equal(t, []complex64{1, 2}, x)
	})
	t.Run("complex128", func(t *testing.T) {
		x := solveDiag[complex128](t, []complex128{2, 1}, []complex128{4 + 4i, 1i})
		require.Equal(t, []complex128{2 + 2i, 1i}, x)
	})
}

func solveDiag[P float32 | complex64 | complex128](t *testing.T, diag, rhs []P) []P {
	t.Helper()
	tr, _ := matrix.NewTriplet[P](len(diag), len(diag))
	for i, d := range diag {
		require.NoError(t, tr.Set(i, i, d))
	}
	a, err := tr.ToCompCol()
	require.NoError(t, err)
	b, _ := matrix.NewVector(rhs...)
	opts := gssv.DefaultOptions()
	_, _, info := gssv.NewNative[P]().Gssv(&opts, a, make(matrix.Perm, len(diag)), make(matrix.Perm, len(diag)), b, nil)
	require.Zero(t, info)

	return b.ColumnMajorValues()
}
