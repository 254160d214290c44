// SPDX-License-Identifier: MIT

// Package matrix holds the containers a sparse direct solver works with.
//
// The matrix package provides:
//
//   - Triplet, a dictionary-of-keys sparse matrix for incremental assembly
//     (Set, InsertUnbounded, Resize, ConcatCols/ConcatRows, Transpose).
//   - CompCol, the verified compressed-column view (values, row indices,
//     column offsets) produced by Triplet.ToCompCol or CompColFromRaw.
//   - Dense, a column-major matrix for right-hand sides and solutions.
//   - Perm, permutation vectors in the native solver convention.
//   - Ownership tags: handles built by callers are CallerOwnsBuffers,
//     factors created by an engine are SolverOwnsBuffers; Release dispatches
//     on the tag and every accessor of a released or moved-from handle
//     returns ErrReleased.
//   - gonum interop (AsGonum, DenseToGonum, DenseFromGonum) and residual norms.
//
// All containers are generic over scalar.Scalar (float32, float64,
// complex64, complex128). Errors are sentinels wrapped with the operation
// name; match them with errors.Is.
package matrix
