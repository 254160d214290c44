// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/johnrscott/csuperlu/scalar"
)

// Norm returns the Euclidean norm of x for any scalar kind.
// Real kinds go through floats.Norm, complex kinds through cmplxs.Norm;
// single precision is widened first.
// Complexity: O(len(x)).
func Norm[P scalar.Scalar](x []P) float64 {
	if len(x) == 0 {
		return 0
	}
	switch v := any(x).(type) {
	case []float64:
		return floats.Norm(v, 2)
	case []float32:
		w := make([]float64, len(v))
		for i, e := range v {
			w[i] = float64(e)
		}
		return floats.Norm(w, 2)
	case []complex128:
		return cmplxs.Norm(v, 2)
	case []complex64:
		w := make([]complex128, len(v))
		for i, e := range v {
			w[i] = complex128(e)
		}
		return cmplxs.Norm(w, 2)
	}

	panic(fmt.Sprintf("matrix: Norm: unsupported scalar %T", x))
}

// ResidualNorms returns ‖A·x_j − b_j‖₂ for every column j of x and b.
// Errors:
//   - ErrReleased; ErrDimensionMismatch when shapes disagree.
//
// Complexity: O(cols(b)·(nnz + rows)).
func ResidualNorms[P scalar.Scalar](a *CompCol[P], x, b *Dense[P]) ([]float64, error) {
	if err := ValidateRHS(a, b); err != nil {
		return nil, err
	}
	if err := x.own.live("ResidualNorms"); err != nil {
		return nil, err
	}
	if rows, cols := x.Shape(); rows != a.NumCols() || cols != b.c {
		return nil, fmt.Errorf("ResidualNorms: x is %dx%d, want %dx%d: %w", rows, cols, a.NumCols(), b.c, ErrDimensionMismatch)
	}
	out := make([]float64, b.c)
	for j := 0; j < b.c; j++ {
		ax, err := a.Multiply(x.data[j*x.r : (j+1)*x.r])
		if err != nil {
			return nil, err
		}
		for i, bi := range b.data[j*b.r : (j+1)*b.r] {
			ax[i] -= bi
		}
		out[j] = Norm(ax)
	}

	return out, nil
}
