// SPDX-License-Identifier: MIT

package gssv

import (
	"fmt"
	"time"
)

// Phase indexes the per-phase counters of Stat.
type Phase int

const (
	// PhaseOrder is the column ordering.
	PhaseOrder Phase = iota
	// PhaseFactor is the numeric factorization.
	PhaseFactor
	// PhaseSolve is the pair of triangular solves.
	PhaseSolve

	numPhases
)

var phaseNames = [numPhases]string{"order", "factor", "solve"}

// String implements fmt.Stringer.
func (p Phase) String() string {
	if p >= 0 && p < numPhases {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Stat collects timings and operation counts of the last engine call.
// A Stat may be reused across calls; each call overwrites the phases it
// runs and increments Calls.
type Stat struct {
	Time  [numPhases]time.Duration
	Flops [numPhases]float64
	NnzL  int // including the unit diagonal
	NnzU  int // including the diagonal
	Calls int
}

// NewStat returns a zeroed Stat.
func NewStat() *Stat { return &Stat{} }

// Reset zeroes every counter.
func (s *Stat) Reset() { *s = Stat{} }
