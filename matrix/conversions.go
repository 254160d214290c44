// SPDX-License-Identifier: MIT

// Package matrix - conversions between the construction (Triplet) and the
// solver (CompCol) representations.

package matrix

import (
	"fmt"
	"slices"
)

const ctxToCompCol = "Triplet.ToCompCol"

// ToCompCol builds the compressed-column view of m.
// Implementation:
//   - Stage 1: collect entries and stable-sort by (col, row).
//   - Stage 2: emit values/row indices; every column (empty ones included)
//     closes with the running count, so offsets have cols+1 entries.
//   - Stage 3: audit the result (rows strictly ascending per column) before
//     handing it out.
//
// Behavior highlights:
//   - Value(r,c) of the result equals m.Get(r,c) for every in-bounds cell.
//   - The result is caller-owned; m is left untouched.
//
// Complexity:
//   - Time O(nnz log nnz + cols), Space O(nnz + cols).
func (m *Triplet[P]) ToCompCol() (*CompCol[P], error) {
	entries := m.Entries()
	values := make([]P, 0, len(entries))
	rowIndices := make([]int, 0, len(entries))
	colOffsets := make([]int, 0, m.cols+1)

	colOffsets = append(colOffsets, 0)
	col := 0
	for _, e := range entries {
		for col < e.Col {
			colOffsets = append(colOffsets, len(values))
			col++
		}
		values = append(values, e.Value)
		rowIndices = append(rowIndices, e.Row)
	}
	for col < m.cols {
		colOffsets = append(colOffsets, len(values))
		col++
	}

	a, err := CompColFromRaw(CompColRaw[P]{
		NumRows:    m.rows,
		Values:     values,
		RowIndices: rowIndices,
		ColOffsets: colOffsets,
	}, WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToCompCol, err)
	}
	if err = a.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToCompCol, err)
	}

	return a, nil
}

// Dense expands a CompCol into a caller-owned column-major Dense.
// Complexity: O(rows*cols + nnz).
func (a *CompCol[P]) Dense() (*Dense[P], error) {
	if err := a.own.live(ctxAccess); err != nil {
		return nil, err
	}
	d, err := NewDense[P](a.numRows, a.NumCols())
	if err != nil {
		return nil, err
	}
	var c, k int
	for c = 0; c < a.NumCols(); c++ {
		for k = a.colOffsets[c]; k < a.colOffsets[c+1]; k++ {
			d.data[c*a.numRows+a.rowIndices[k]] = a.values[k]
		}
	}

	return d, nil
}

// PermuteCols returns A·Pc: column j of A becomes column perm[j].
// Row indices stay ascending within every column.
// Complexity: O(nnz + cols).
func (a *CompCol[P]) PermuteCols(perm Perm) (*CompCol[P], error) {
	if err := a.own.live(ctxAccess); err != nil {
		return nil, err
	}
	n := a.NumCols()
	if err := perm.Validate(n); err != nil {
		return nil, fmt.Errorf("CompCol.PermuteCols: %w", err)
	}
	inv := perm.Inverse()
	raw := CompColRaw[P]{
		NumRows:    a.numRows,
		Values:     make([]P, 0, len(a.values)),
		RowIndices: make([]int, 0, len(a.rowIndices)),
		ColOffsets: make([]int, 0, n+1),
	}
	raw.ColOffsets = append(raw.ColOffsets, 0)
	for k := 0; k < n; k++ {
		rows, vals := a.Column(inv[k])
		raw.RowIndices = append(raw.RowIndices, rows...)
		raw.Values = append(raw.Values, vals...)
		raw.ColOffsets = append(raw.ColOffsets, len(raw.Values))
	}

	return CompColFromRaw(raw, WithNoValidateNaNInf())
}

// PermuteRows returns Pr·A: row i of A becomes row perm[i].
// Complexity: O(nnz log nnz(col)).
func (a *CompCol[P]) PermuteRows(perm Perm) (*CompCol[P], error) {
	if err := a.own.live(ctxAccess); err != nil {
		return nil, err
	}
	if err := perm.Validate(a.numRows); err != nil {
		return nil, fmt.Errorf("CompCol.PermuteRows: %w", err)
	}
	type cell struct {
		row int
		val P
	}
	raw := CompColRaw[P]{
		NumRows:    a.numRows,
		Values:     make([]P, 0, len(a.values)),
		RowIndices: make([]int, 0, len(a.rowIndices)),
		ColOffsets: slices.Clone(a.colOffsets),
	}
	var buf []cell
	for c := 0; c < a.NumCols(); c++ {
		rows, vals := a.Column(c)
		buf = buf[:0]
		for k, r := range rows {
			buf = append(buf, cell{row: perm[r], val: vals[k]})
		}
		slices.SortFunc(buf, func(x, y cell) int { return x.row - y.row })
		for _, e := range buf {
			raw.RowIndices = append(raw.RowIndices, e.row)
			raw.Values = append(raw.Values, e.val)
		}
	}

	return CompColFromRaw(raw, WithNoValidateNaNInf())
}
