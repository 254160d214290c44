// SPDX-License-Identifier: MIT

// Package ordering - column elimination tree and its postorder.
//
// The column elimination tree of A·Pc is the elimination tree of
// (A·Pc)ᵀ(A·Pc); it is computed from A directly with a disjoint-set forest.
// Relabelling the columns in a postorder of that tree keeps every subtree
// contiguous, which the factorization exploits for locality.
//
// Complexity:
//   - ColumnEtree: O(nnz · α(n)); Postorder: O(n).

package ordering

import (
	"fmt"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// ColumnEtree returns parent[k] for every step k of A·Pc; roots point at n.
// perm must be a valid column permutation of a.
func ColumnEtree[P scalar.Scalar](a *matrix.CompCol[P], perm matrix.Perm) ([]int, error) {
	n := a.NumCols()
	if err := perm.Validate(n); err != nil {
		return nil, fmt.Errorf("ordering.ColumnEtree: %w", err)
	}
	q := perm.Inverse()

	// firstCol[r] is the first step whose column holds row r.
	firstCol := make([]int, a.NumRows())
	for r := range firstCol {
		firstCol[r] = n
	}
	var k int
	for k = 0; k < n; k++ {
		rows, _ := a.Column(q[k])
		for _, r := range rows {
			firstCol[r] = min(firstCol[r], k)
		}
	}

	parent := make([]int, n)
	root := make([]int, n) // root[set] = highest step in the set
	sets := newDisjointSets(n)
	var cset, rset, rroot, first int
	for k = 0; k < n; k++ {
		cset = k
		root[cset] = k
		parent[k] = n
		rows, _ := a.Column(q[k])
		for _, r := range rows {
			if first = firstCol[r]; first >= k {
				continue
			}
			rset = sets.find(first)
			if rroot = root[rset]; rroot != k {
				parent[rroot] = k
				cset = sets.link(cset, rset)
				root[cset] = k
			}
		}
	}

	return parent, nil
}

// Postorder returns post[v], the position of node v in a depth-first
// postorder of the forest given by parent (roots point at len(parent)).
// Children are visited in ascending order, roots likewise.
func Postorder(parent []int) []int {
	n := len(parent)
	firstKid := make([]int, n+1)
	for i := range firstKid {
		firstKid[i] = -1
	}
	nextKid := make([]int, n)
	for v := n - 1; v >= 0; v-- {
		p := parent[v]
		nextKid[v] = firstKid[p]
		firstKid[p] = v
	}

	post := make([]int, n)
	stack := []int{n} // virtual root
	count := 0
	var v, kid int
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		if kid = firstKid[v]; kid >= 0 {
			firstKid[v] = nextKid[kid] // advance before descending
			stack = append(stack, kid)
			continue
		}
		stack = stack[:len(stack)-1]
		if v < n {
			post[v] = count
			count++
		}
	}

	return post
}

// PostorderPerm relabels perm so that the columns of A·Pc follow a
// postorder of the column elimination tree.
func PostorderPerm[P scalar.Scalar](a *matrix.CompCol[P], perm matrix.Perm) (matrix.Perm, error) {
	parent, err := ColumnEtree(a, perm)
	if err != nil {
		return nil, err
	}
	post := Postorder(parent)
	out := make(matrix.Perm, len(perm))
	for j, k := range perm {
		out[j] = post[k]
	}

	return out, nil
}

// disjointSets is a union-find forest with path halving.
type disjointSets struct {
	up []int
}

func newDisjointSets(n int) *disjointSets {
	d := &disjointSets{up: make([]int, n)}
	for i := range d.up {
		d.up[i] = i
	}

	return d
}

func (d *disjointSets) find(i int) int {
	for d.up[i] != i {
		d.up[i] = d.up[d.up[i]]
		i = d.up[i]
	}

	return i
}

// link merges the set of s into t and returns the surviving representative.
func (d *disjointSets) link(s, t int) int {
	d.up[s] = t
	return t
}
