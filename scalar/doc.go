// SPDX-License-Identifier: MIT

// Package scalar defines the numeric element types understood by the
// sparse solver: real single/double precision and complex single/double
// precision.
//
// Every matrix and solver type in this module is parameterised by one
// constrained type parameter P (see Scalar). Magnitudes are always reported
// as float64, which plays the role of the associated "real" type for all
// four instantiations.
//
// Complexity quicksheet:
//   - Abs, IsZero, IsFinite, One: O(1), no allocations.
package scalar
