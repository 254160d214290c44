// SPDX-License-Identifier: MIT

// Package matrix - compressed-column (column-major) sparse view.
//
// Purpose:
//   - Hold the three compressed-column vectors (values, row indices, column
//     offsets) exactly as a direct sparse-LU solver consumes them.
//   - Verify the structure before any solver sees it: a view that exists is
//     well-formed (offsets monotone, rows in range and strictly ascending
//     per column).
//   - Track buffer ownership so that engine-produced factors are reclaimed by
//     the engine and caller-built views are not.
//
// Complexity quicksheet:
//   - CompColFromRaw/Check: O(nnz + cols); Value: O(log nnz(col));
//     Multiply: O(nnz); ToTriplet: O(nnz).

package matrix

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/johnrscott/csuperlu/scalar"
)

// ---------- error context tags ----------

const (
	ctxFromRaw  = "CompColFromRaw"
	ctxCheck    = "CompCol.Check"
	ctxValue    = "CompCol.Value"
	ctxMultiply = "CompCol.Multiply"
	ctxToRaw    = "CompCol.ToRaw"
	ctxRelease  = "CompCol.Release"
	ctxAccess   = "CompCol"
)

// compColErrorf wraps ErrCompCol with the violated rule.
func compColErrorf(ctx, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", ctx, fmt.Sprintf(format, args...), ErrCompCol)
}

// CompColRaw is the plain-vector form of a compressed-column matrix: what a
// file parser hands over and what ToRaw gives back. The column count is
// implicit: len(ColOffsets) - 1.
type CompColRaw[P scalar.Scalar] struct {
	NumRows    int
	Values     []P   // len == nnz
	RowIndices []int // len == nnz, each in [0, NumRows)
	ColOffsets []int // len == cols+1, ColOffsets[0]==0, ColOffsets[cols]==nnz
}

// CompCol is an immutable compressed-column sparse matrix.
// The three slices are exclusively owned by the view.
type CompCol[P scalar.Scalar] struct {
	numRows    int
	values     []P
	rowIndices []int
	colOffsets []int
	own        owner
}

// CompColFromRaw validates raw and adopts its slices (no copy).
// Implementation (validation order is part of the contract):
//   - Stage 1: len(ColOffsets) == cols+1, i.e. at least one offset.
//   - Stage 2: len(Values) == len(RowIndices).
//   - Stage 3: ColOffsets[cols] == len(Values).
//   - Stage 4: structural audit (offsets start at 0 and never decrease; row
//     indices in range and strictly ascending inside each column).
//
// Behavior highlights:
//   - Never truncates or pads; the first violation is returned as ErrCompCol.
//   - Options may tag the result SolverOwnsBuffers (engine use).
//
// Errors:
//   - ErrBadShape for a negative row count; ErrCompCol otherwise.
//
// Complexity:
//   - Time O(nnz + cols), Space O(1).
func CompColFromRaw[P scalar.Scalar](raw CompColRaw[P], opts ...Option) (*CompCol[P], error) {
	if raw.NumRows < 0 {
		return nil, fmt.Errorf("%s: %d rows: %w", ctxFromRaw, raw.NumRows, ErrBadShape)
	}
	if len(raw.ColOffsets) < 1 {
		return nil, compColErrorf(ctxFromRaw, "column offsets must have cols+1 entries, got none")
	}
	if len(raw.Values) != len(raw.RowIndices) {
		return nil, compColErrorf(ctxFromRaw, "%d values but %d row indices", len(raw.Values), len(raw.RowIndices))
	}
	if last := raw.ColOffsets[len(raw.ColOffsets)-1]; last != len(raw.Values) {
		return nil, compColErrorf(ctxFromRaw, "last column offset %d != nnz %d", last, len(raw.Values))
	}
	if errs := audit(raw.NumRows, raw.RowIndices, raw.ColOffsets, true); errs != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRaw, errs)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range raw.Values {
			if !scalar.IsFinite(v) {
				return nil, fmt.Errorf("%s: value %d: %w", ctxFromRaw, i, ErrNaNInf)
			}
		}
	}

	return &CompCol[P]{
		numRows:    raw.NumRows,
		values:     raw.Values,
		rowIndices: raw.RowIndices,
		colOffsets: raw.ColOffsets,
		own:        newOwner(o),
	}, nil
}

// audit checks the offset and row-index rules. With firstOnly it stops at the
// first violation; otherwise every violation is collected.
// Complexity: O(nnz + cols).
func audit(numRows int, rowIndices, colOffsets []int, firstOnly bool) error {
	var errs error
	add := func(err error) bool {
		errs = multierr.Append(errs, err)
		return firstOnly
	}
	if colOffsets[0] != 0 {
		if add(compColErrorf(ctxCheck, "first column offset is %d, want 0", colOffsets[0])) {
			return errs
		}
	}
	nnz := len(rowIndices)
	var c, k, lo, hi int
	for c = 0; c+1 < len(colOffsets); c++ {
		lo, hi = colOffsets[c], colOffsets[c+1]
		if lo > hi || lo < 0 || hi > nnz {
			if add(compColErrorf(ctxCheck, "column %d offsets [%d,%d) invalid for nnz %d", c, lo, hi, nnz)) {
				return errs
			}
			continue
		}
		for k = lo; k < hi; k++ {
			if rowIndices[k] < 0 || rowIndices[k] >= numRows {
				if add(compColErrorf(ctxCheck, "column %d row index %d out of range [0,%d)", c, rowIndices[k], numRows)) {
					return errs
				}
			}
			if k > lo && rowIndices[k] <= rowIndices[k-1] {
				if add(compColErrorf(ctxCheck, "column %d row indices not strictly ascending at %d", c, k)) {
					return errs
				}
			}
		}
	}

	return errs
}

// Check re-audits the structure and returns every violation combined
// (multierr); nil for a well-formed view.
func (a *CompCol[P]) Check() error {
	if err := a.own.live(ctxCheck); err != nil {
		return err
	}

	return audit(a.numRows, a.rowIndices, a.colOffsets, false)
}

// NumRows returns the row count, 0 once released. Complexity: O(1).
func (a *CompCol[P]) NumRows() int {
	if a.own.released {
		return 0
	}
	return a.numRows
}

// NumCols returns the column count, len(colOffsets)-1, 0 once released.
// Complexity: O(1).
func (a *CompCol[P]) NumCols() int {
	if a.own.released {
		return 0
	}
	return len(a.colOffsets) - 1
}

// NNZ returns the number of stored entries, 0 once released. Complexity: O(1).
func (a *CompCol[P]) NNZ() int { return len(a.values) }

// Ownership reports who reclaims the buffers.
func (a *CompCol[P]) Ownership() Ownership { return a.own.mode }

// Released reports whether the buffers were moved out or released.
func (a *CompCol[P]) Released() bool { return a.own.released }

// Values returns a copy of the non-zero values in column-major order.
// Values, RowIndices and ColOffsets return nil once released.
func (a *CompCol[P]) Values() []P { return slices.Clone(a.values) }

// RowIndices returns a copy of the per-entry row indices.
func (a *CompCol[P]) RowIndices() []int { return slices.Clone(a.rowIndices) }

// ColOffsets returns a copy of the column offset table.
func (a *CompCol[P]) ColOffsets() []int { return slices.Clone(a.colOffsets) }

// Column returns the row indices and values of column col (shared storage,
// read-only by contract). Intended for engines and orderings.
// A released view has no columns: both results are nil.
// Complexity: O(1).
func (a *CompCol[P]) Column(col int) (rows []int, vals []P) {
	if a.own.released {
		return nil, nil
	}
	lo, hi := a.colOffsets[col], a.colOffsets[col+1]
	return a.rowIndices[lo:hi:hi], a.values[lo:hi:hi]
}

// Value returns A[row,col], or zero when no entry is stored.
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: binary search the column's row indices (ascending by invariant).
//
// Errors:
//   - ErrReleased, ErrOutOfRange.
//
// Complexity: O(log nnz(col)).
func (a *CompCol[P]) Value(row, col int) (P, error) {
	if err := a.own.live(ctxValue); err != nil {
		return 0, err
	}
	if row < 0 || row >= a.numRows || col < 0 || col >= a.NumCols() {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxValue, row, col, ErrOutOfRange)
	}
	rows, vals := a.Column(col)
	if k, found := slices.BinarySearch(rows, row); found {
		return vals[k], nil
	}

	return 0, nil
}

// Multiply computes b = A·x, b[r] = Σ_c A[r,c]·x[c].
// Errors:
//   - ErrReleased; ErrDimensionMismatch when len(x) != cols.
//
// Complexity: O(nnz + rows).
func (a *CompCol[P]) Multiply(x []P) ([]P, error) {
	if err := a.own.live(ctxMultiply); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(x, a.NumCols()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMultiply, err)
	}
	b := make([]P, a.numRows)
	var c, k int
	var xc P
	for c = 0; c < len(x); c++ {
		xc = x[c]
		if xc == 0 {
			continue
		}
		for k = a.colOffsets[c]; k < a.colOffsets[c+1]; k++ {
			b[a.rowIndices[k]] += a.values[k] * xc
		}
	}

	return b, nil
}

// SamePattern reports whether b has exactly the same shape and sparsity
// pattern (values may differ).
func (a *CompCol[P]) SamePattern(b *CompCol[P]) bool {
	if b == nil || a.own.released || b.own.released {
		return false
	}

	return a.numRows == b.numRows &&
		slices.Equal(a.colOffsets, b.colOffsets) &&
		slices.Equal(a.rowIndices, b.rowIndices)
}

// ToTriplet expands the view into a new caller-owned Triplet.
// Complexity: O(nnz).
func (a *CompCol[P]) ToTriplet() (*Triplet[P], error) {
	if err := a.own.live(ctxAccess); err != nil {
		return nil, err
	}
	t, err := NewTriplet[P](a.numRows, a.NumCols())
	if err != nil {
		return nil, err
	}
	var c, k int
	for c = 0; c < a.NumCols(); c++ {
		for k = a.colOffsets[c]; k < a.colOffsets[c+1]; k++ {
			t.store(a.rowIndices[k], c, a.values[k])
		}
	}

	return t, nil
}

// Clone returns a caller-owned deep copy.
func (a *CompCol[P]) Clone() (*CompCol[P], error) {
	if err := a.own.live(ctxAccess); err != nil {
		return nil, err
	}

	return &CompCol[P]{
		numRows:    a.numRows,
		values:     slices.Clone(a.values),
		rowIndices: slices.Clone(a.rowIndices),
		colOffsets: slices.Clone(a.colOffsets),
		own:        owner{mode: CallerOwnsBuffers},
	}, nil
}

// ToRaw moves the buffers out and leaves the view released.
// Caller-owned buffers move without a copy; solver-owned buffers are copied
// out and handed back to the engine hook.
// CompColFromRaw(ToRaw()) reproduces the original view exactly.
func (a *CompCol[P]) ToRaw() (CompColRaw[P], error) {
	if err := a.own.live(ctxToRaw); err != nil {
		return CompColRaw[P]{}, err
	}
	raw := CompColRaw[P]{
		NumRows:    a.numRows,
		Values:     a.values,
		RowIndices: a.rowIndices,
		ColOffsets: a.colOffsets,
	}
	if a.own.mode == SolverOwnsBuffers {
		raw.Values = slices.Clone(a.values)
		raw.RowIndices = slices.Clone(a.rowIndices)
		raw.ColOffsets = slices.Clone(a.colOffsets)
	}
	if err := a.own.handOff(ctxToRaw); err != nil {
		return CompColRaw[P]{}, err
	}
	a.values, a.rowIndices, a.colOffsets = nil, nil, nil

	return raw, nil
}

// Release reclaims the buffers according to the ownership tag:
// solver-owned views call the engine hook, caller-owned views drop their
// references. A second Release returns ErrReleased.
func (a *CompCol[P]) Release() error {
	if err := a.own.drop(ctxRelease); err != nil {
		return err
	}
	a.values, a.rowIndices, a.colOffsets = nil, nil, nil

	return nil
}
