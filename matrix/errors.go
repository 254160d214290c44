// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors return these sentinels (usually wrapped
// with a "Type.Method" context via %w) and tests check them via errors.Is.
// No public method panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// released handle -> shape/index/NaN -> dimension mismatch -> structural violations.

var (
	// ErrBadShape is returned when requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (Get/Set/At/Value) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ConcatCols with different row counts or Multiply with len(x) != cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrResizeTooSmall signals a Resize below the bounding box of stored entries.
	ErrResizeTooSmall = errors.New("matrix: resize would drop non-zero entries")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrCompCol marks malformed compressed-column input vectors (length
	// mismatches, bad offsets, unsorted or out-of-range row indices).
	ErrCompCol = errors.New("matrix: invalid compressed-column matrix")

	// ErrDenseMatrix marks a dense buffer whose length is not rows*cols.
	ErrDenseMatrix = errors.New("matrix: invalid dense matrix")

	// ErrNotPermutation marks a permutation vector that is not a bijection on [0,n).
	ErrNotPermutation = errors.New("matrix: not a permutation")

	// ErrReleased is returned by every accessor of a handle whose buffers were
	// moved out (Move/ToRaw) or released (Release).
	ErrReleased = errors.New("matrix: buffers released")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
