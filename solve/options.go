// SPDX-License-Identifier: MIT

// Package solve: functional configuration for the pipeline variants.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal), which also enforces the cross-option
//     rules (policy vs. hint, diagonally-dominant mode vs. policy).
package solve

import (
	"fmt"
	"math"

	"github.com/johnrscott/csuperlu/gssv"
	"github.com/johnrscott/csuperlu/ordering"
	"github.com/johnrscott/csuperlu/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultColumnPermPolicy is the ordering a SimpleSystem asks for.
	DefaultColumnPermPolicy = ordering.ColAMD
	// DefaultDiagPivotThresh: classic partial pivoting.
	DefaultDiagPivotThresh = gssv.DefaultDiagPivotThresh
	// DefaultSymmetricMode is off.
	DefaultSymmetricMode = gssv.DefaultSymmetricMode
	// DefaultWorkspaceBytes: 0 means unlimited.
	DefaultWorkspaceBytes = gssv.DefaultWorkspaceBytes
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBadPolicy    = "solve: WithColumnPermPolicy: unknown ordering method"
	panicBadThreshold = "solve: pivot threshold must be within [0,1]"
	panicBadLimit     = "solve: WithWorkspaceLimit: bytes must be >= 0"
	panicNilStat      = "solve: WithStat: stat must not be nil"
	panicNilEngine    = "solve: WithEngine: engine must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	policy       ordering.Method
	policySet    bool
	thresh       float64
	symmetric    bool
	diagDominant bool
	workspace    int
	stat         *gssv.Stat
	engine       any // Engine[P] for the caller's P
}

// WithColumnPermPolicy selects the ordering for SimpleSystem.
// Rejected (ErrPolicyWithHint) by the variants that supply ColumnPerm.
//
// Errors:
//   - Panics on an unknown method (programmer error).
func WithColumnPermPolicy(m ordering.Method) Option {
	if m < ordering.Natural || m > ordering.ColAMD {
		panic(panicBadPolicy)
	}

	return func(o *Options) {
		o.policy = m
		o.policySet = true
	}
}

// WithDiagPivotThreshold sets u in [0,1]: a diagonal (or supplied) pivot is
// kept when |pivot| >= u·max|column|.
//
// Errors:
//   - Panics when u is NaN or outside [0,1].
func WithDiagPivotThreshold(u float64) Option {
	mustThreshold(u)

	return func(o *Options) { o.thresh = u }
}

// WithDiagonallyDominant switches to the mode for diagonally dominant
// systems: symmetric mode, pivot threshold u and the MMD(Aᵀ+A) ordering.
// A different explicit policy is rejected with ErrConflictingOptions.
func WithDiagonallyDominant(u float64) Option {
	mustThreshold(u)

	return func(o *Options) {
		o.diagDominant = true
		o.symmetric = true
		o.thresh = u
	}
}

// WithWorkspaceLimit caps the factor storage the engine may use; 0 lifts
// the cap. Exceeding it ends the call with OutOfMemory.
func WithWorkspaceLimit(bytes int) Option {
	if bytes < 0 {
		panic(panicBadLimit)
	}

	return func(o *Options) { o.workspace = bytes }
}

// WithStat reuses stat as the engine's statistics slot; the Solution
// returns the same pointer.
func WithStat(stat *gssv.Stat) Option {
	if stat == nil {
		panic(panicNilStat)
	}

	return func(o *Options) { o.stat = stat }
}

// WithEngine replaces the bundled gssv.Native engine. The engine's scalar
// type must match the system's.
func WithEngine[P scalar.Scalar](e Engine[P]) Option {
	if e == nil {
		panic(panicNilEngine)
	}

	return func(o *Options) { o.engine = e }
}

func mustThreshold(u float64) {
	if math.IsNaN(u) || u < 0 || u > 1 {
		panic(panicBadThreshold)
	}
}

// gatherOptions applies setters on top of the defaults and resolves the
// engine for P.
// Errors:
//   - ErrPolicyWithHint when hint is true and a policy was given.
//   - ErrConflictingOptions for diagonally-dominant mode with another
//     policy, or an engine of a different scalar type.
func gatherOptions[P scalar.Scalar](hint bool, user ...Option) (Options, Engine[P], error) {
	o := Options{
		policy:    DefaultColumnPermPolicy,
		thresh:    DefaultDiagPivotThresh,
		symmetric: DefaultSymmetricMode,
		workspace: DefaultWorkspaceBytes,
	}
	for _, set := range user {
		set(&o)
	}
	if hint && o.policySet {
		return o, nil, ErrPolicyWithHint
	}
	if o.diagDominant {
		if o.policySet && o.policy != ordering.MMDAtPlusA {
			return o, nil, fmt.Errorf("diagonally dominant mode needs %s, got %s: %w",
				ordering.MMDAtPlusA, o.policy, ErrConflictingOptions)
		}
		o.policy = ordering.MMDAtPlusA
	}

	if o.engine == nil {
		return o, gssv.NewNative[P](), nil
	}
	e, ok := o.engine.(Engine[P])
	if !ok {
		return o, nil, fmt.Errorf("engine %T cannot solve %s systems: %w", o.engine, scalar.KindOf[P](), ErrConflictingOptions)
	}

	return o, e, nil
}

// engineOptions translates the pipeline configuration for one variant.
func (o Options) engineOptions(colPerm gssv.ColPerm, rowPerm gssv.RowPerm) gssv.Options {
	if colPerm != gssv.MyPermC {
		colPerm = policyColPerm(o.policy)
	}

	return gssv.Options{
		ColPerm:         colPerm,
		RowPerm:         rowPerm,
		DiagPivotThresh: o.thresh,
		SymmetricMode:   o.symmetric,
		WorkspaceBytes:  o.workspace,
	}
}

// policyColPerm maps an ordering method onto the engine's enum.
func policyColPerm(m ordering.Method) gssv.ColPerm {
	switch m {
	case ordering.Natural:
		return gssv.Natural
	case ordering.MMDAtA:
		return gssv.MMDAtA
	case ordering.MMDAtPlusA:
		return gssv.MMDAtPlusA
	default:
		return gssv.ColAMD
	}
}
