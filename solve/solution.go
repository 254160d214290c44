// SPDX-License-Identifier: MIT

package solve

import (
	"go.uber.org/multierr"

	"github.com/johnrscott/csuperlu/gssv"
	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// Solution is the successful outcome of one pipeline call.
// A is handed back for the next reuse step; X is the moved-in B, now
// holding the solution; ColumnPerm and RowPerm feed SamePattern and
// SimilarValues.
type Solution[P scalar.Scalar] struct {
	A          *matrix.CompCol[P]
	X          *matrix.Dense[P]
	ColumnPerm matrix.Perm
	RowPerm    matrix.Perm
	LU         *Factors[P]
	Stat       *gssv.Stat
}

// Residual returns ‖A·x_j − b_j‖₂ for every right-hand side column j.
func (s *Solution[P]) Residual(b *matrix.Dense[P]) ([]float64, error) {
	return matrix.ResidualNorms(s.A, s.X, b)
}

// Release releases X and the factors. A stays with the caller.
func (s *Solution[P]) Release() error {
	return multierr.Combine(s.X.Release(), s.LU.Release())
}
