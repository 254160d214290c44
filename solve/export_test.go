// SPDX-License-Identifier: MIT

package solve

import (
	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// NewFactors_TestOnly exposes the factor shape check to solve_test.
func NewFactors_TestOnly[P scalar.Scalar](l, u *matrix.CompCol[P]) (*Factors[P], error) {
	return newFactors(l, u)
}
