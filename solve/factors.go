// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// Factors is the factorization result: Pr·A·Pc = L·U with L unit lower
// triangular and U upper triangular, both in permuted coordinates.
// Built only from engine output.
type Factors[P scalar.Scalar] struct {
	L *matrix.CompCol[P]
	U *matrix.CompCol[P]
}

// newFactors checks that L and U are square and of equal size.
func newFactors[P scalar.Scalar](l, u *matrix.CompCol[P]) (*Factors[P], error) {
	if l == nil || u == nil {
		return nil, fmt.Errorf("solve: factors: %w", matrix.ErrNilMatrix)
	}
	n := l.NumRows()
	if l.NumCols() != n || u.NumRows() != n || u.NumCols() != n {
		return nil, fmt.Errorf("solve: L %dx%d, U %dx%d: %w",
			l.NumRows(), l.NumCols(), u.NumRows(), u.NumCols(), ErrFactorShape)
	}

	return &Factors[P]{L: l, U: u}, nil
}

// Release hands both factors back to their owner; errors are combined.
func (f *Factors[P]) Release() error {
	return multierr.Combine(f.L.Release(), f.U.Release())
}

// releaseAll releases whatever an aborted call left behind.
func releaseAll[P scalar.Scalar](l, u *matrix.CompCol[P], x *matrix.Dense[P]) error {
	var err error
	if l != nil {
		err = multierr.Append(err, l.Release())
	}
	if u != nil {
		err = multierr.Append(err, u.Release())
	}
	if x != nil {
		err = multierr.Append(err, x.Release())
	}

	return err
}
