// SPDX-License-Identifier: MIT

// Package ordering computes fill-reducing column permutations for sparse LU.
//
// Methods:
//
//   - Natural: the identity.
//   - MMDAtA: multiple minimum degree on the column intersection graph
//     (the pattern of AᵀA).
//   - MMDAtPlusA: multiple minimum degree on the pattern of Aᵀ+A (square A).
//   - ColAMD: approximate column ordering scored directly from A, without
//     forming AᵀA.
//
// Results are returned as matrix.Perm in the column convention of the
// solver: perm[j] = k places column j of A at position k of A·Pc.
// Every method is deterministic; ties are broken by the smaller column index.
//
// ColumnEtree and Postorder expose the column elimination tree of A·Pc;
// PostorderPerm relabels an ordering so that every subtree is contiguous.
package ordering
