// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse and dense containers.
// This file contains ONLY the coordinate key and the buffer-ownership model.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Key addresses one entry of a Triplet matrix.
type Key struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Ownership states who is responsible for reclaiming a handle's buffers.
//
// A matrix handle built by a caller (constructors, conversions) owns its
// slices directly: CallerOwnsBuffers. A handle produced by a solver engine
// (the L and U factors) is tagged SolverOwnsBuffers and carries the engine's
// release hook, which Release calls exactly once.
type Ownership int

const (
	// CallerOwnsBuffers means Release only drops the handle's references.
	CallerOwnsBuffers Ownership = iota
	// SolverOwnsBuffers means Release hands the buffers back to the engine.
	SolverOwnsBuffers
)

// String implements fmt.Stringer.
func (o Ownership) String() string {
	switch o {
	case CallerOwnsBuffers:
		return "CallerOwnsBuffers"
	case SolverOwnsBuffers:
		return "SolverOwnsBuffers"
	default:
		return fmt.Sprintf("Ownership(%d)", int(o))
	}
}

// owner is the ownership state embedded in every buffer-owning handle.
// Exactly one owner exists for a buffer at any time; once released (or moved
// out) the handle refuses further access.
type owner struct {
	mode     Ownership
	released bool
	release  func() // engine hook; nil unless mode == SolverOwnsBuffers
}

// newOwner builds the ownership state from resolved options.
func newOwner(o Options) owner {
	if o.release != nil {
		return owner{mode: SolverOwnsBuffers, release: o.release}
	}

	return owner{mode: CallerOwnsBuffers}
}

// live returns ErrReleased (wrapped with ctx) once the buffers are gone.
// Complexity: O(1).
func (o *owner) live(ctx string) error {
	if o.released {
		return fmt.Errorf("%s: %w", ctx, ErrReleased)
	}

	return nil
}

// drop marks the handle released and dispatches on the ownership tag.
// Stage 1: refuse a second release.
// Stage 2: solver-owned buffers go back through the engine hook.
// Complexity: O(1) plus the hook.
func (o *owner) drop(ctx string) error {
	if err := o.live(ctx); err != nil {
		return err
	}
	o.released = true
	if o.mode == SolverOwnsBuffers && o.release != nil {
		hook := o.release
		o.release = nil
		hook()
	}

	return nil
}

// handOff releases the handle for a move of its buffers out of the view.
// Caller-owned buffers simply change hands. Solver-owned buffers never
// leave the engine: the caller must have copied them, and the hook fires
// here, exactly once.
func (o *owner) handOff(ctx string) error {
	if o.mode == SolverOwnsBuffers {
		return o.drop(ctx)
	}
	_, err := o.detach(ctx)

	return err
}

// detach marks the handle moved-from without calling the release hook;
// the buffers continue to live under a new owner.
func (o *owner) detach(ctx string) (owner, error) {
	if err := o.live(ctx); err != nil {
		return owner{}, err
	}
	moved := *o
	o.released = true
	o.release = nil

	return moved, nil
}
