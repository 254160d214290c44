// SPDX-License-Identifier: MIT

package solve

import (
	"github.com/johnrscott/csuperlu/gssv"
	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// Engine is the narrow contract to a sparse direct solver. One call orders
// (unless opts.ColPerm is MyPermC), factors, and when info == 0 overwrites b
// with the solution. permC, permR, b and stat are mutated in place; info
// follows the native *gssv convention (see Classify).
type Engine[P scalar.Scalar] interface {
	Gssv(opts *gssv.Options, a *matrix.CompCol[P], permC, permR matrix.Perm, b *matrix.Dense[P], stat *gssv.Stat) (l, u *matrix.CompCol[P], info int)
}

// Compile-time assertion: the bundled engine satisfies the contract.
var _ Engine[float64] = (*gssv.Native[float64])(nil)
