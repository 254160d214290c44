// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the shape checks the
//    solve pipeline and engines run before touching any buffer.
//  - Return wrapped sentinels so call sites can match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Released → Shape).

package matrix

import (
	"fmt"

	"github.com/johnrscott/csuperlu/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures a is non-nil, live and has rows == cols.
// Complexity: O(1).
func ValidateSquare[P scalar.Scalar](a *CompCol[P]) error {
	if a == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if err := a.own.live("ValidateSquare"); err != nil {
		return err
	}
	if a.NumRows() != a.NumCols() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", a.NumRows(), a.NumCols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// Complexity: O(1).
func ValidateVecLen[P scalar.Scalar](x []P, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len=%d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateRHS ensures a and b are non-nil, live, and b has one row per row of a.
// Complexity: O(1).
func ValidateRHS[P scalar.Scalar](a *CompCol[P], b *Dense[P]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateRHS", ErrNilMatrix)
	}
	if err := a.own.live("ValidateRHS"); err != nil {
		return err
	}
	if err := b.own.live("ValidateRHS"); err != nil {
		return err
	}
	if a.NumRows() != b.Rows() {
		return validatorErrorf("ValidateRHS",
			fmt.Errorf("A has %d rows, B has %d: %w", a.NumRows(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateHint ensures a user-supplied permutation has length n.
// Bijection is not checked here; the engine does that and reports a
// negative info.
func ValidateHint(tag string, p Perm, n int) error {
	if len(p) != n {
		return validatorErrorf(tag, fmt.Errorf("hint length %d, want %d: %w", len(p), n, ErrDimensionMismatch))
	}

	return nil
}
