// SPDX-License-Identifier: MIT

// Package matrix - Triplet (dictionary-of-keys) sparse matrix used for construction.
//
// Purpose:
//   - Incremental assembly by (row, col, value) triplets with O(1) average Get/Set.
//   - Never store explicit zeros: writing 0 removes the key.
//   - Feed ToCompCol, which produces the column-major view solvers consume.
//
// Complexity quicksheet:
//   - Get/Set/InsertUnbounded: O(1) average; Resize: O(nnz); Transpose/Clone: O(nnz);
//     ToCompCol: O(nnz log nnz + cols).

package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnrscott/csuperlu/scalar"
)

// ---------- error context tags ----------

const (
	ctxTripletNew     = "NewTriplet"
	ctxTripletGet     = "Get"
	ctxTripletSet     = "Set"
	ctxTripletInsert  = "InsertUnbounded"
	ctxTripletResize  = "Resize"
	ctxTripletFromMap = "TripletFromMap"
	ctxConcatCols     = "ConcatCols"
	ctxConcatRows     = "ConcatRows"
)

// tripletErrorf wraps an error with a uniform Triplet context and callsite indices.
func tripletErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Triplet.%s(%d,%d): %w", method, row, col, err)
}

// Triplet is a mutable sparse matrix keyed by (row, col).
//   - rows, cols hold the logical dimensions (0×0 is the empty matrix).
//   - entries never contains a zero value.
//   - validateNaNInf rejects NaN/Inf on writes when true.
type Triplet[P scalar.Scalar] struct {
	rows, cols     int
	entries        map[Key]P
	validateNaNInf bool
}

// NewTriplet creates an empty rows×cols triplet matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate the key map and apply the numeric policy.
//
// Behavior highlights:
//   - NewTriplet(0, 0) is the growable empty matrix used with InsertUnbounded.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewTriplet[P scalar.Scalar](rows, cols int, opts ...Option) (*Triplet[P], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxTripletNew, rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Triplet[P]{
		rows:           rows,
		cols:           cols,
		entries:        make(map[Key]P),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// TripletFromMap adopts a key map, sizing the matrix to the bounding box of
// its keys. Zero values are dropped; negative keys are rejected.
// Complexity: O(len(values)).
func TripletFromMap[P scalar.Scalar](values map[Key]P, opts ...Option) (*Triplet[P], error) {
	m, err := NewTriplet[P](0, 0, opts...)
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		if err = m.InsertUnbounded(k.Row, k.Col, v); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxTripletFromMap, err)
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Triplet[P]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Triplet[P]) Cols() int { return m.cols }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (m *Triplet[P]) NNZ() int { return len(m.entries) }

// inBounds reports whether (row, col) addresses a cell of the matrix.
func (m *Triplet[P]) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Get returns the value at (row, col), or the additive identity when absent.
// Errors:
//   - ErrOutOfRange when indices are outside the matrix.
//
// Complexity: O(1) average.
func (m *Triplet[P]) Get(row, col int) (P, error) {
	if !m.inBounds(row, col) {
		return 0, tripletErrorf(ctxTripletGet, row, col, ErrOutOfRange)
	}

	return m.entries[Key{Row: row, Col: col}], nil
}

// GetUnbounded returns the value at (row, col) without checking bounds;
// any coordinate that holds no entry reads as zero.
func (m *Triplet[P]) GetUnbounded(row, col int) P {
	return m.entries[Key{Row: row, Col: col}]
}

// Set stores v at (row, col). Writing zero removes the entry.
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: delete on zero, store otherwise.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
//
// Complexity: O(1) average.
func (m *Triplet[P]) Set(row, col int, v P) error {
	if !m.inBounds(row, col) {
		return tripletErrorf(ctxTripletSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && !scalar.IsFinite(v) {
		return tripletErrorf(ctxTripletSet, row, col, ErrNaNInf)
	}
	m.store(row, col, v)

	return nil
}

// InsertUnbounded stores v at (row, col), growing the matrix to fit.
// Zero removes the entry and never grows the matrix.
//
// Errors:
//   - ErrOutOfRange for negative indices; ErrNaNInf for non-finite values.
func (m *Triplet[P]) InsertUnbounded(row, col int, v P) error {
	if row < 0 || col < 0 {
		return tripletErrorf(ctxTripletInsert, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && !scalar.IsFinite(v) {
		return tripletErrorf(ctxTripletInsert, row, col, ErrNaNInf)
	}
	if v != 0 {
		if row >= m.rows {
			m.rows = row + 1
		}
		if col >= m.cols {
			m.cols = col + 1
		}
	}
	m.store(row, col, v)

	return nil
}

// store is the single write path; explicit zeros are never kept.
func (m *Triplet[P]) store(row, col int, v P) {
	k := Key{Row: row, Col: col}
	if v == 0 {
		delete(m.entries, k)
		return
	}
	m.entries[k] = v
}

// Has reports whether an entry is stored at (row, col).
func (m *Triplet[P]) Has(row, col int) bool {
	_, ok := m.entries[Key{Row: row, Col: col}]
	return ok
}

// boundingBox returns the smallest (rows, cols) that contains every entry.
// Complexity: O(nnz).
func (m *Triplet[P]) boundingBox() (rows, cols int) {
	for k := range m.entries {
		if k.Row+1 > rows {
			rows = k.Row + 1
		}
		if k.Col+1 > cols {
			cols = k.Col + 1
		}
	}

	return rows, cols
}

// Resize changes the logical dimensions.
// Errors:
//   - ErrBadShape for negative dimensions.
//   - ErrResizeTooSmall when the new shape would cut off a stored entry.
//
// Complexity: O(nnz).
func (m *Triplet[P]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("Triplet.%s(%d,%d): %w", ctxTripletResize, rows, cols, ErrBadShape)
	}
	br, bc := m.boundingBox()
	if rows < br || cols < bc {
		return fmt.Errorf("Triplet.%s(%d,%d): entries need %dx%d: %w",
			ctxTripletResize, rows, cols, br, bc, ErrResizeTooSmall)
	}
	m.rows, m.cols = rows, cols

	return nil
}

// Transpose returns a new matrix with swapped dimensions and keys.
// Complexity: O(nnz).
func (m *Triplet[P]) Transpose() *Triplet[P] {
	t := &Triplet[P]{
		rows:           m.cols,
		cols:           m.rows,
		entries:        make(map[Key]P, len(m.entries)),
		validateNaNInf: m.validateNaNInf,
	}
	for k, v := range m.entries {
		t.entries[Key{Row: k.Col, Col: k.Row}] = v
	}

	return t
}

// Clone returns a deep copy with the same numeric policy.
func (m *Triplet[P]) Clone() *Triplet[P] {
	c := &Triplet[P]{
		rows:           m.rows,
		cols:           m.cols,
		entries:        make(map[Key]P, len(m.entries)),
		validateNaNInf: m.validateNaNInf,
	}
	for k, v := range m.entries {
		c.entries[k] = v
	}

	return c
}

// Entry is one stored triplet.
type Entry[P scalar.Scalar] struct {
	Row, Col int
	Value    P
}

// Entries returns the stored triplets sorted in column-major order
// (by column, then row). Map iteration order never leaks out.
// Complexity: O(nnz log nnz).
func (m *Triplet[P]) Entries() []Entry[P] {
	out := make([]Entry[P], 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry[P]{Row: k.Row, Col: k.Col, Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Col != out[j].Col {
			return out[i].Col < out[j].Col
		}
		return out[i].Row < out[j].Row
	})

	return out
}

// ConcatCols places the inputs side by side: [m0 m1 ...].
// Errors:
//   - ErrNilMatrix for a nil input; ErrDimensionMismatch when row counts differ.
//
// Complexity: O(Σ nnz).
func ConcatCols[P scalar.Scalar](ms ...*Triplet[P]) (*Triplet[P], error) {
	return concat(ctxConcatCols, true, ms)
}

// ConcatRows stacks the inputs vertically: [m0; m1; ...].
// Errors:
//   - ErrNilMatrix for a nil input; ErrDimensionMismatch when column counts differ.
func ConcatRows[P scalar.Scalar](ms ...*Triplet[P]) (*Triplet[P], error) {
	return concat(ctxConcatRows, false, ms)
}

// concat shares validation and offsetting between ConcatCols and ConcatRows.
// byCols=true offsets column keys; false offsets row keys.
func concat[P scalar.Scalar](ctx string, byCols bool, ms []*Triplet[P]) (*Triplet[P], error) {
	if len(ms) == 0 {
		return NewTriplet[P](0, 0)
	}
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("%s: input %d: %w", ctx, i, ErrNilMatrix)
		}
	}
	out := &Triplet[P]{entries: make(map[Key]P), validateNaNInf: ms[0].validateNaNInf}
	if byCols {
		out.rows = ms[0].rows
	} else {
		out.cols = ms[0].cols
	}

	var offset int
	for i, m := range ms {
		if byCols && m.rows != out.rows {
			return nil, fmt.Errorf("%s: input %d has %d rows, want %d: %w", ctx, i, m.rows, out.rows, ErrDimensionMismatch)
		}
		if !byCols && m.cols != out.cols {
			return nil, fmt.Errorf("%s: input %d has %d cols, want %d: %w", ctx, i, m.cols, out.cols, ErrDimensionMismatch)
		}
		for k, v := range m.entries {
			if byCols {
				out.entries[Key{Row: k.Row, Col: k.Col + offset}] = v
			} else {
				out.entries[Key{Row: k.Row + offset, Col: k.Col}] = v
			}
		}
		if byCols {
			offset += m.cols
		} else {
			offset += m.rows
		}
	}
	if byCols {
		out.cols = offset
	} else {
		out.rows = offset
	}

	return out, nil
}

// String renders a header line followed by one "(r, c) = v" line per entry
// in column-major order.
func (m *Triplet[P]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d x %d matrix, %d non-zero values\n", m.rows, m.cols, len(m.entries))
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, "(%d, %d) = %v\n", e.Row, e.Col, e.Value)
	}

	return b.String()
}
