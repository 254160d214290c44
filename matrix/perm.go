// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"
)

// Perm is a permutation vector in the native solver convention:
//   - column perm: p[j] = k means column j of A is column k of A·Pc;
//   - row perm:    p[i] = k means row i of A is row k of Pr·A.
type Perm []int

// IdentityPerm returns [0, 1, ..., n-1].
func IdentityPerm(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports ErrNotPermutation unless p is a bijection on [0,n).
// Complexity: O(n) time, O(n) space.
func (p Perm) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("Perm.Validate: length %d, want %d: %w", len(p), n, ErrNotPermutation)
	}
	seen := make([]bool, n)
	for i, k := range p {
		if k < 0 || k >= n {
			return fmt.Errorf("Perm.Validate: p[%d]=%d out of [0,%d): %w", i, k, n, ErrNotPermutation)
		}
		if seen[k] {
			return fmt.Errorf("Perm.Validate: %d repeated: %w", k, ErrNotPermutation)
		}
		seen[k] = true
	}

	return nil
}

// Inverse returns q with q[p[i]] = i. p must be valid.
func (p Perm) Inverse() Perm {
	q := make(Perm, len(p))
	for i, k := range p {
		q[k] = i
	}

	return q
}

// IsIdentity reports whether p[i] == i for every i.
func (p Perm) IsIdentity() bool {
	for i, k := range p {
		if i != k {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (p Perm) Clone() Perm { return slices.Clone(p) }
