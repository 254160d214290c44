// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Hold right-hand sides and solutions in the column-major layout sparse
//     direct solvers read and overwrite in place (offset = j*rows + i).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support move semantics: Move hands the buffer to a new handle and the
//     old one refuses further access.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Move/ToRaw: O(1).

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/johnrscott/csuperlu/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxColumn    = "Column"
	ctxMove      = "Move"
	ctxDenseRaw  = "ToRaw"
	ctxDenseNew  = "NewDense"
	ctxDenseFrom = "DenseFromRaw"
	ctxDenseCols = "DenseFromColumns"
	ctxDenseRel  = "Release"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a column-major dense matrix.
//   - r,c hold dimensions (rows, cols); 0-sized shapes are legal.
//   - data is a flat buffer of length r*c in column-major order (offset = j*r + i).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense[P scalar.Scalar] struct {
	r, c           int
	data           []P
	validateNaNInf bool
	own            owner
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using column-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[P scalar.Scalar](rows, cols int, opts ...Option) (*Dense[P], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxDenseNew, rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Dense[P]{
		r:              rows,
		c:              cols,
		data:           make([]P, rows*cols),
		validateNaNInf: o.validateNaNInf,
		own:            newOwner(o),
	}, nil
}

// DenseRaw is the plain-buffer form of a dense matrix: Values holds
// Rows*Cols entries in column-major order.
type DenseRaw[P scalar.Scalar] struct {
	Rows, Cols int
	Values     []P
}

// DenseFromRaw adopts a column-major buffer (no copy).
// Errors:
//   - ErrBadShape for negative dimensions.
//   - ErrDenseMatrix when len(Values) != Rows*Cols.
//   - ErrNaNInf for non-finite values when validation is on.
//
// Complexity: O(1), or O(r*c) with validation.
func DenseFromRaw[P scalar.Scalar](raw DenseRaw[P], opts ...Option) (*Dense[P], error) {
	rows, cols := raw.Rows, raw.Cols
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxDenseFrom, rows, cols, ErrBadShape)
	}
	if len(raw.Values) != rows*cols {
		return nil, fmt.Errorf("%s: %d values for %dx%d: %w", ctxDenseFrom, len(raw.Values), rows, cols, ErrDenseMatrix)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range raw.Values {
			if !scalar.IsFinite(v) {
				return nil, denseErrorf(ctxDenseFrom, k%rows, k/rows, ErrNaNInf)
			}
		}
	}

	return &Dense[P]{r: rows, c: cols, data: raw.Values, validateNaNInf: o.validateNaNInf, own: newOwner(o)}, nil
}

// DenseFromColumns copies equally long columns into a new matrix.
// Errors:
//   - ErrDimensionMismatch when the columns differ in length.
func DenseFromColumns[P scalar.Scalar](cols ...[]P) (*Dense[P], error) {
	if len(cols) == 0 {
		return NewDense[P](0, 0)
	}
	rows := len(cols[0])
	data := make([]P, 0, rows*len(cols))
	for j, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("%s: column %d has %d rows, want %d: %w", ctxDenseCols, j, len(col), rows, ErrDimensionMismatch)
		}
		data = append(data, col...)
	}

	return DenseFromRaw(DenseRaw[P]{Rows: rows, Cols: len(cols), Values: data})
}

// NewVector wraps values as an n×1 column (copying them).
func NewVector[P scalar.Scalar](values ...P) (*Dense[P], error) {
	return DenseFromRaw(DenseRaw[P]{Rows: len(values), Cols: 1, Values: slices.Clone(values)})
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[P]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[P]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[P]) Shape() (rows, cols int) { return m.r, m.c }

// Ownership reports who reclaims the buffer.
func (m *Dense[P]) Ownership() Ownership { return m.own.mode }

// Released reports whether the buffer was moved out or released.
func (m *Dense[P]) Released() bool { return m.own.released }

// indexOf computes the column-major offset or returns ErrOutOfRange.
func (m *Dense[P]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return col*m.r + row, nil
}

// At returns the value at (row, col).
// Errors:
//   - ErrReleased, ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense[P]) At(row, col int) (P, error) {
	if err := m.own.live("Dense." + ctxAt); err != nil {
		return 0, err
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors:
//   - ErrReleased, ErrOutOfRange, ErrNaNInf (policy on).
//
// Complexity: O(1).
func (m *Dense[P]) Set(row, col int, v P) error {
	if err := m.own.live("Dense." + ctxSet); err != nil {
		return err
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !scalar.IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Column returns a copy of column j.
func (m *Dense[P]) Column(j int) ([]P, error) {
	if err := m.own.live("Dense." + ctxColumn); err != nil {
		return nil, err
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return slices.Clone(m.data[j*m.r : (j+1)*m.r]), nil
}

// ColumnMajorValues returns a copy of the whole buffer in column-major order;
// nil once released.
func (m *Dense[P]) ColumnMajorValues() []P { return slices.Clone(m.data) }

// Data exposes the live column-major buffer for in-place kernels (solver
// engines overwrite B with X through it). Nil once released.
func (m *Dense[P]) Data() []P { return m.data }

// Clone returns a caller-owned deep copy with the same numeric policy.
// Complexity: O(r*c).
func (m *Dense[P]) Clone() *Dense[P] {
	return &Dense[P]{
		r:              m.r,
		c:              m.c,
		data:           slices.Clone(m.data),
		validateNaNInf: m.validateNaNInf,
		own:            owner{mode: CallerOwnsBuffers, released: m.own.released},
	}
}

// Move transfers the buffer (and its ownership) to a new handle.
// The receiver is left released; every later access returns ErrReleased.
// Complexity: O(1).
func (m *Dense[P]) Move() (*Dense[P], error) {
	own, err := m.own.detach("Dense." + ctxMove)
	if err != nil {
		return nil, err
	}
	out := &Dense[P]{r: m.r, c: m.c, data: m.data, validateNaNInf: m.validateNaNInf, own: own}
	m.data = nil

	return out, nil
}

// ToRaw moves the column-major buffer out together with its shape.
// A solver-owned buffer is copied out and handed back to the engine hook.
// DenseFromRaw(ToRaw()) reproduces the matrix.
func (m *Dense[P]) ToRaw() (DenseRaw[P], error) {
	if err := m.own.live("Dense." + ctxDenseRaw); err != nil {
		return DenseRaw[P]{}, err
	}
	raw := DenseRaw[P]{Rows: m.r, Cols: m.c, Values: m.data}
	if m.own.mode == SolverOwnsBuffers {
		raw.Values = slices.Clone(m.data)
	}
	if err := m.own.handOff("Dense." + ctxDenseRaw); err != nil {
		return DenseRaw[P]{}, err
	}
	m.data = nil

	return raw, nil
}

// Release reclaims the buffer according to the ownership tag.
// A second Release returns ErrReleased.
func (m *Dense[P]) Release() error {
	if err := m.own.drop("Dense." + ctxDenseRel); err != nil {
		return err
	}
	m.data = nil

	return nil
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense[P]) String() string {
	if m.own.released {
		return "<released>"
	}
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[j*m.r+i])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
