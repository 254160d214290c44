// SPDX-License-Identifier: MIT

package gssv

import (
	"fmt"

	"github.com/johnrscott/csuperlu/ordering"
)

// ColPerm selects how the engine obtains the column permutation.
type ColPerm int

const (
	// Natural uses the identity ordering.
	Natural ColPerm = iota
	// MMDAtA uses minimum degree on AᵀA.
	MMDAtA
	// MMDAtPlusA uses minimum degree on Aᵀ+A.
	MMDAtPlusA
	// ColAMD uses the approximate column ordering.
	ColAMD
	// MyPermC uses the permutation already stored in permC.
	MyPermC
)

// String implements fmt.Stringer.
func (c ColPerm) String() string {
	switch c {
	case Natural:
		return "NATURAL"
	case MMDAtA:
		return "MMD_ATA"
	case MMDAtPlusA:
		return "MMD_AT_PLUS_A"
	case ColAMD:
		return "COLAMD"
	case MyPermC:
		return "MY_PERMC"
	default:
		return fmt.Sprintf("ColPerm(%d)", int(c))
	}
}

// Method maps a computed ordering onto package ordering; ok is false for
// MyPermC and unknown values.
func (c ColPerm) Method() (m ordering.Method, ok bool) {
	switch c {
	case Natural:
		return ordering.Natural, true
	case MMDAtA:
		return ordering.MMDAtA, true
	case MMDAtPlusA:
		return ordering.MMDAtPlusA, true
	case ColAMD:
		return ordering.ColAMD, true
	}

	return 0, false
}

// RowPerm selects the row pivoting mode.
type RowPerm int

const (
	// NoRowPerm searches pivots numerically.
	NoRowPerm RowPerm = iota
	// MyPermR prefers the pivots already stored in permR.
	MyPermR
)

// String implements fmt.Stringer.
func (r RowPerm) String() string {
	switch r {
	case NoRowPerm:
		return "NOROWPERM"
	case MyPermR:
		return "MY_PERMR"
	default:
		return fmt.Sprintf("RowPerm(%d)", int(r))
	}
}

// Defaults, matching set_default_options.
const (
	DefaultColPerm         = ColAMD
	DefaultRowPerm         = NoRowPerm
	DefaultDiagPivotThresh = 1.0
	DefaultSymmetricMode   = false
	DefaultWorkspaceBytes  = 0 // unlimited
)

// Options is the engine configuration.
//   - DiagPivotThresh u in [0,1]: a preferred pivot is accepted when
//     |pivot| >= u·max|column|; u=1 is classic partial pivoting, u=0 always
//     accepts a non-zero preferred pivot.
//   - SymmetricMode tries the diagonal before a user-supplied row pivot.
//   - WorkspaceBytes caps the factor storage; 0 means unlimited.
type Options struct {
	ColPerm         ColPerm
	RowPerm         RowPerm
	DiagPivotThresh float64
	SymmetricMode   bool
	WorkspaceBytes  int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ColPerm:         DefaultColPerm,
		RowPerm:         DefaultRowPerm,
		DiagPivotThresh: DefaultDiagPivotThresh,
		SymmetricMode:   DefaultSymmetricMode,
		WorkspaceBytes:  DefaultWorkspaceBytes,
	}
}

// valid reports whether every field is in range.
func (o *Options) valid() bool {
	if o == nil {
		return false
	}
	if o.ColPerm < Natural || o.ColPerm > MyPermC {
		return false
	}
	if o.RowPerm != NoRowPerm && o.RowPerm != MyPermR {
		return false
	}
	if !(o.DiagPivotThresh >= 0 && o.DiagPivotThresh <= 1) {
		return false
	}

	return o.WorkspaceBytes >= 0
}
