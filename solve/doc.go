// SPDX-License-Identifier: MIT

// Package solve is the permutation-reuse pipeline between a compressed-column
// matrix and a sparse direct solver engine.
//
// Three variants call the engine once each and differ only in the knowledge
// they hand over:
//
//	SimpleSystem   A, B                          → engine orders and pivots
//	SamePattern    A, B, ColumnPerm              → engine skips column ordering
//	SimilarValues  A, B, ColumnPerm, RowPerm     → engine also reuses row pivots
//
// B is moved into the call (it becomes Solution.X) and the engine's status
// is classified by Classify:
//
//	sol, err := solve.SimpleSystem[float64]{A: a, B: b}.Solve()
//	var sing *solve.SingularError[float64]
//	switch {
//	case errors.As(err, &sing):     // sing.Column, sing.LU
//	case errors.Is(err, solve.ErrOutOfMemory):
//	case err != nil:
//	}
//	next, err := solve.SamePattern[float64]{A: a2, B: b2, ColumnPerm: sol.ColumnPerm}.Solve()
//
// Solutions and singular errors own solver-allocated factors; call Release
// when done with them.
package solve
