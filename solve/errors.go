// SPDX-License-Identifier: MIT

package solve

import (
	"errors"
	"fmt"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

var (
	// ErrUnknown is the catch-all for negative engine status codes.
	ErrUnknown = errors.New("solve: unknown solver error")

	// ErrOutOfMemory is matched by every *OutOfMemoryError.
	ErrOutOfMemory = errors.New("solve: solver ran out of memory")

	// ErrSingular is matched by every *SingularError and singular Outcome.
	ErrSingular = errors.New("solve: singular factorization")

	// ErrPolicyWithHint rejects a column-ordering policy on a variant that
	// already supplies a column permutation.
	ErrPolicyWithHint = errors.New("solve: column ordering policy given together with a permutation hint")

	// ErrConflictingOptions rejects option combinations that cannot both hold.
	ErrConflictingOptions = errors.New("solve: conflicting options")

	// ErrFactorShape reports factors whose four dimensions differ.
	ErrFactorShape = errors.New("solve: L and U dimensions differ")
)

// OutOfMemoryError reports workspace exhaustion inside the engine.
type OutOfMemoryError struct {
	BytesAllocated int // best-effort count at the time of failure
}

// Error implements error.
func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("solve: solver ran out of memory after %d bytes", e.BytesAllocated)
}

// Unwrap lets errors.Is match ErrOutOfMemory.
func (e *OutOfMemoryError) Unwrap() error { return ErrOutOfMemory }

// SingularError is the terminal outcome of a factorization that completed
// with an exact zero pivot. No solution exists; the permutations and the
// partial factors remain valid for diagnosis.
type SingularError[P scalar.Scalar] struct {
	Column     int // zero-based column of A·Pc holding the zero pivot
	ColumnPerm matrix.Perm
	RowPerm    matrix.Perm
	LU         *Factors[P]
}

// Error implements error.
func (e *SingularError[P]) Error() string {
	return fmt.Sprintf("solve: singular factorization at column %d", e.Column)
}

// Unwrap lets errors.Is match ErrSingular.
func (e *SingularError[P]) Unwrap() error { return ErrSingular }

// Release releases the partial factors.
func (e *SingularError[P]) Release() error {
	if e.LU == nil {
		return nil
	}
	return e.LU.Release()
}
