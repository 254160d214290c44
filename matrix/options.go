// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// InsertUnbounded and raw ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilReleaseHook = "matrix: WithSolverOwnership: release hook must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool   // DefaultValidateNaNInf
	release        func() // non-nil ⇒ SolverOwnsBuffers
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Only newly created matrices are affected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSolverOwnership tags the constructed handle SolverOwnsBuffers and
// registers the hook Release must invoke. Intended for solver engines that
// hand factor buffers to callers.
//
// Errors:
//   - Panics when release is nil (programmer error).
func WithSolverOwnership(release func()) Option {
	if release == nil {
		panic(panicNilReleaseHook)
	}

	return func(o *Options) { o.release = release }
}

// gatherOptions applies setters on top of the defaults, last-writer-wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
