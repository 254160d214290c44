// SPDX-License-Identifier: MIT

package gssv

import (
	"slices"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// intBytes is the storage charged per stored index.
const intBytes = 8

// factorizer holds the state of one left-looking factorization.
// Rows are original row indices of A; steps are positions 0..n-1 of the
// elimination (columns of A·Pc).
type factorizer[P scalar.Scalar] struct {
	a         *matrix.CompCol[P]
	n         int
	thresh    float64
	symmetric bool
	limit     int

	q       []int // step → original column
	userRow []int // step → preferred row (MyPermR), nil otherwise
	pinv    []int // row → step, -1 while unpivoted
	prow    []int // step → pivot row

	lRows [][]int // per step: original rows below the pivot
	lVals [][]P
	uRows [][]int // per step: steps j<k with U(j,k) != 0, then k
	uVals [][]P

	x       []P   // dense accumulator indexed by row
	rowMark []int // k+1 when the row is in the pattern of step k
	pattern []int
	reach   []int
	stack   []int

	stored int
	flops  float64
}

// newFactorizer prepares the state for a checked argument set.
func newFactorizer[P scalar.Scalar](opts *Options, a *matrix.CompCol[P], permC, permR matrix.Perm) *factorizer[P] {
	n := a.NumCols()
	f := &factorizer[P]{
		a:         a,
		n:         n,
		thresh:    opts.DiagPivotThresh,
		symmetric: opts.SymmetricMode,
		limit:     opts.WorkspaceBytes,
		q:         permC.Inverse(),
		pinv:      make([]int, n),
		prow:      make([]int, n),
		lRows:     make([][]int, n),
		lVals:     make([][]P, n),
		uRows:     make([][]int, n),
		uVals:     make([][]P, n),
		x:         make([]P, n),
		rowMark:   make([]int, n),
	}
	for i := range f.pinv {
		f.pinv[i] = -1
	}
	if opts.RowPerm == MyPermR {
		f.userRow = permR.Inverse()
	}

	return f
}

// run factors every column and returns info (0, first zero pivot k+1, or
// n+bytes on workspace exhaustion).
func (f *factorizer[P]) run() int {
	info := 0
	for k := 0; k < f.n; k++ {
		f.symbolic(k)
		f.eliminate(k)
		if f.pivot(k) && info == 0 {
			info = k + 1
		}
		if f.limit > 0 {
			if bytes := f.bytes(); bytes > f.limit {
				return f.n + bytes
			}
		}
	}

	return info
}

// symbolic scatters column q[k] of A into x and computes its pattern: the
// rows reachable through the L columns of already pivoted rows.
// Complexity: O(|pattern| + Σ_{j ∈ reach} nnz(L(:,j))).
func (f *factorizer[P]) symbolic(k int) {
	f.pattern, f.reach, f.stack = f.pattern[:0], f.reach[:0], f.stack[:0]
	stamp := k + 1
	visit := func(r int) {
		if f.rowMark[r] == stamp {
			return
		}
		f.rowMark[r] = stamp
		f.pattern = append(f.pattern, r)
		if j := f.pinv[r]; j >= 0 {
			f.stack = append(f.stack, j)
		}
	}

	rows, vals := f.a.Column(f.q[k])
	for i, r := range rows {
		f.x[r] = vals[i]
		visit(r)
	}
	var j int
	for len(f.stack) > 0 {
		j = f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		f.reach = append(f.reach, j)
		for _, r := range f.lRows[j] {
			visit(r)
		}
	}
}

// eliminate applies the L columns of the reached steps to x. An L column
// only holds rows pivoted later than its own step, so ascending step order
// is a topological order of the dependencies.
func (f *factorizer[P]) eliminate(k int) {
	slices.Sort(f.reach)
	var xj P
	for _, j := range f.reach {
		xj = f.x[f.prow[j]]
		if xj == 0 {
			continue
		}
		f.uRows[k] = append(f.uRows[k], j)
		f.uVals[k] = append(f.uVals[k], xj)
		for i, r := range f.lRows[j] {
			f.x[r] -= f.lVals[j][i] * xj
		}
		f.flops += 2 * float64(len(f.lRows[j]))
	}
}

// pivot chooses the pivot row of step k, stores U(k,k) and L(:,k), and
// clears the accumulator. It reports whether the column had no usable
// pivot (every candidate exactly zero).
//
// Preference: the user row (MyPermR) then the diagonal, swapped in
// symmetric mode; a preferred row is taken when it is unpivoted, non-zero
// and at least thresh·max. Otherwise the largest magnitude wins, the
// smallest row index on ties.
func (f *factorizer[P]) pivot(k int) (singular bool) {
	slices.Sort(f.pattern)
	var amax float64
	best := -1
	for _, r := range f.pattern {
		if f.pinv[r] >= 0 {
			continue
		}
		if m := scalar.Abs(f.x[r]); m > amax {
			amax, best = m, r
		}
	}

	user, diag := -1, f.q[k]
	if f.userRow != nil {
		user = f.userRow[k]
	}
	first, second := user, diag
	if f.symmetric {
		first, second = diag, user
	}

	piv := -1
	if amax == 0 {
		singular = true
		for _, r := range []int{first, second} {
			if r >= 0 && f.pinv[r] < 0 {
				piv = r
				break
			}
		}
		if piv < 0 {
			piv = slices.Index(f.pinv, -1)
		}
	} else {
		limit := f.thresh * amax
		accept := func(r int) bool {
			return r >= 0 && f.pinv[r] < 0 && f.x[r] != 0 && scalar.Abs(f.x[r]) >= limit
		}
		switch {
		case accept(first):
			piv = first
		case accept(second):
			piv = second
		default:
			piv = best
		}
	}

	pv := f.x[piv]
	f.pinv[piv] = k
	f.prow[k] = piv
	f.uRows[k] = append(f.uRows[k], k)
	f.uVals[k] = append(f.uVals[k], pv)
	if !singular {
		for _, r := range f.pattern {
			if r == piv || f.pinv[r] >= 0 || f.x[r] == 0 {
				continue
			}
			f.lRows[k] = append(f.lRows[k], r)
			f.lVals[k] = append(f.lVals[k], f.x[r]/pv)
		}
		f.flops += float64(len(f.lRows[k]))
	}
	for _, r := range f.pattern {
		f.x[r] = 0
	}
	f.stored += 1 + len(f.lRows[k]) + len(f.uRows[k])

	return singular
}

// bytes is the factor storage so far: one unit diagonal of L plus every
// stored L and U entry, each a value and an index, plus both offset tables.
func (f *factorizer[P]) bytes() int {
	return f.stored*(scalar.Size[P]()+intBytes) + 2*(f.n+1)*intBytes
}

// argsort returns the indices that sort keys ascending (stable).
func argsort(keys []int) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(x, y int) int { return keys[x] - keys[y] })

	return idx
}
