// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum/mat.
//
// Purpose:
//   - Let callers move right-hand sides and solutions in and out of gonum
//     (row-major *mat.Dense / *mat.CDense) without index juggling.
//   - Expose a float64 CompCol as a read-only mat.Matrix so gonum routines
//     (mat.Formatted, mat.LU, Mul) can consume a sparse system directly.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Compile-time assertion: the sparse view satisfies gonum's Matrix.
var _ mat.Matrix = CompColView{}

// CompColView adapts a float64 CompCol to mat.Matrix. At panics with
// mat.ErrIndexOutOfRange like every gonum matrix does.
type CompColView struct {
	a *CompCol[float64]
}

// AsGonum wraps a without copying.
func AsGonum(a *CompCol[float64]) CompColView { return CompColView{a: a} }

// Dims implements mat.Matrix.
func (v CompColView) Dims() (r, c int) { return v.a.NumRows(), v.a.NumCols() }

// At implements mat.Matrix.
func (v CompColView) At(i, j int) float64 {
	x, err := v.a.Value(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T implements mat.Matrix.
func (v CompColView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// DenseToGonum copies d into a row-major *mat.Dense.
// Errors:
//   - ErrReleased; ErrBadShape for a zero dimension (gonum forbids them).
//
// Complexity: O(r*c).
func DenseToGonum(d *Dense[float64]) (*mat.Dense, error) {
	if err := d.own.live("DenseToGonum"); err != nil {
		return nil, err
	}
	if d.r == 0 || d.c == 0 {
		return nil, fmt.Errorf("DenseToGonum(%d,%d): %w", d.r, d.c, ErrBadShape)
	}
	out := mat.NewDense(d.r, d.c, nil)
	var i, j int
	for j = 0; j < d.c; j++ {
		for i = 0; i < d.r; i++ {
			out.Set(i, j, d.data[j*d.r+i])
		}
	}

	return out, nil
}

// ComplexDenseToGonum copies d into a row-major *mat.CDense.
func ComplexDenseToGonum(d *Dense[complex128]) (*mat.CDense, error) {
	if err := d.own.live("ComplexDenseToGonum"); err != nil {
		return nil, err
	}
	if d.r == 0 || d.c == 0 {
		return nil, fmt.Errorf("ComplexDenseToGonum(%d,%d): %w", d.r, d.c, ErrBadShape)
	}
	out := mat.NewCDense(d.r, d.c, nil)
	var i, j int
	for j = 0; j < d.c; j++ {
		for i = 0; i < d.r; i++ {
			out.Set(i, j, d.data[j*d.r+i])
		}
	}

	return out, nil
}

// DenseFromGonum copies any gonum matrix into a caller-owned column-major Dense.
// Complexity: O(r*c).
func DenseFromGonum(m mat.Matrix) *Dense[float64] {
	r, c := m.Dims()
	d := &Dense[float64]{r: r, c: c, data: make([]float64, r*c), validateNaNInf: DefaultValidateNaNInf}
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			d.data[j*r+i] = m.At(i, j)
		}
	}

	return d
}

// CompColFromGonum scans m column by column and keeps the non-zeros.
// Errors:
//   - ErrNaNInf when m holds a non-finite value (policy on).
//
// Complexity: O(r*c).
func CompColFromGonum(m mat.Matrix, opts ...Option) (*CompCol[float64], error) {
	r, c := m.Dims()
	raw := CompColRaw[float64]{NumRows: r, ColOffsets: make([]int, 1, c+1)}
	var i, j int
	var v float64
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if v = m.At(i, j); v != 0 {
				raw.Values = append(raw.Values, v)
				raw.RowIndices = append(raw.RowIndices, i)
			}
		}
		raw.ColOffsets = append(raw.ColOffsets, len(raw.Values))
	}

	return CompColFromRaw(raw, opts...)
}
