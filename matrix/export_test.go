// SPDX-License-Identifier: MIT

package matrix

// Test bridge: read-only view of resolved options for matrix_test.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	SolverOwned    bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf, SolverOwned: o.release != nil}
}
