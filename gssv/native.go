// SPDX-License-Identifier: MIT

package gssv

import (
	"fmt"
	"sync/atomic"
	"time"

	"k8s.io/klog/v2"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/ordering"
	"github.com/johnrscott/csuperlu/scalar"
)

// Negative info values: the position of the offending argument.
const (
	infoBadOptions = -1
	infoBadA       = -2
	infoBadPermC   = -3
	infoBadPermR   = -4
	infoBadB       = -7
)

// Native is the pure-Go engine. The zero value is ready to use; a Native
// may serve any number of sequential calls.
type Native[P scalar.Scalar] struct {
	live atomic.Int64 // factor handles handed out and not yet released
}

// NewNative returns a ready engine.
func NewNative[P scalar.Scalar]() *Native[P] { return &Native[P]{} }

// Live reports how many factor handles are still outstanding.
func (e *Native[P]) Live() int { return int(e.live.Load()) }

// Gssv orders, factors and solves A·X = B in place.
//
// Implementation:
//   - Stage 1: validate arguments (negative info on failure; nothing mutated).
//   - Stage 2: unless ColPerm is MyPermC, overwrite permC with the ordering
//     relabelled in elimination-tree postorder. A supplied order is kept.
//   - Stage 3: factor Pr·A·Pc = L·U column by column; permR receives the
//     chosen row pivots.
//   - Stage 4: only when info == 0, overwrite b with X.
//
// Behavior highlights:
//   - A zero pivot does not stop the factorization: info records the first
//     such column, its U diagonal is 0 and its L column is empty.
//   - Workspace exhaustion returns nil factors and leaves permR untouched.
//
// Complexity:
//   - Time O(flops + nnz·log), Space O(nnz(L) + nnz(U) + n).
func (e *Native[P]) Gssv(opts *Options, a *matrix.CompCol[P], permC, permR matrix.Perm, b *matrix.Dense[P], stat *Stat) (l, u *matrix.CompCol[P], info int) {
	if info = checkArgs(opts, a, permC, permR, b); info != 0 {
		klog.V(5).InfoS("gssv: rejected argument", "info", info)
		return nil, nil, info
	}
	if stat == nil {
		stat = NewStat()
	}
	stat.Calls++
	n := a.NumCols()

	start := time.Now()
	if m, ok := opts.ColPerm.Method(); ok {
		computed, err := ordering.ColumnPerm(m, a)
		if err != nil {
			klog.V(5).InfoS("gssv: ordering failed", "method", m, "err", err)
			return nil, nil, infoBadA
		}
		if computed, err = ordering.PostorderPerm(a, computed); err != nil {
			return nil, nil, infoBadA
		}
		copy(permC, computed)
	}
	stat.Time[PhaseOrder] = time.Since(start)

	start = time.Now()
	f := newFactorizer(opts, a, permC, permR)
	info = f.run()
	stat.Time[PhaseFactor] = time.Since(start)
	stat.Flops[PhaseFactor] = f.flops
	if info > n {
		klog.V(5).InfoS("gssv: workspace exhausted", "n", n, "bytes", info-n, "limit", opts.WorkspaceBytes)
		return nil, nil, info
	}
	copy(permR, f.pinv)

	l, u = e.export(f)
	stat.NnzL, stat.NnzU = l.NNZ(), u.NNZ()
	if info == 0 {
		start = time.Now()
		stat.Flops[PhaseSolve] = solveInPlace(l, u, permC, permR, b)
		stat.Time[PhaseSolve] = time.Since(start)
	}
	klog.V(5).InfoS("gssv: done", "kind", scalar.KindOf[P](), "n", n, "nnzA", a.NNZ(),
		"nnzL", stat.NnzL, "nnzU", stat.NnzU, "info", info,
		"order", stat.Time[PhaseOrder], "factor", stat.Time[PhaseFactor], "solve", stat.Time[PhaseSolve])

	return l, u, info
}

// checkArgs returns the negative info of the first invalid argument, or 0.
func checkArgs[P scalar.Scalar](opts *Options, a *matrix.CompCol[P], permC, permR matrix.Perm, b *matrix.Dense[P]) int {
	if !opts.valid() {
		return infoBadOptions
	}
	if matrix.ValidateSquare(a) != nil {
		return infoBadA
	}
	n := a.NumCols()
	if len(permC) != n || (opts.ColPerm == MyPermC && permC.Validate(n) != nil) {
		return infoBadPermC
	}
	if len(permR) != n || (opts.RowPerm == MyPermR && permR.Validate(n) != nil) {
		return infoBadPermR
	}
	if matrix.ValidateRHS(a, b) != nil {
		return infoBadB
	}

	return 0
}

// export converts the factorizer's columns into solver-owned CompCol views
// in step coordinates: L keeps its unit diagonal first in every column,
// U keeps its diagonal last.
func (e *Native[P]) export(f *factorizer[P]) (l, u *matrix.CompCol[P]) {
	n := f.n
	lraw := matrix.CompColRaw[P]{NumRows: n, ColOffsets: make([]int, 1, n+1)}
	uraw := matrix.CompColRaw[P]{NumRows: n, ColOffsets: make([]int, 1, n+1)}
	var k, i int
	var steps []int
	for k = 0; k < n; k++ {
		lraw.RowIndices = append(lraw.RowIndices, k)
		lraw.Values = append(lraw.Values, scalar.One[P]())
		steps = steps[:0]
		for _, r := range f.lRows[k] {
			steps = append(steps, f.pinv[r])
		}
		order := argsort(steps)
		for _, i = range order {
			lraw.RowIndices = append(lraw.RowIndices, steps[i])
			lraw.Values = append(lraw.Values, f.lVals[k][i])
		}
		lraw.ColOffsets = append(lraw.ColOffsets, len(lraw.Values))

		uraw.RowIndices = append(uraw.RowIndices, f.uRows[k]...)
		uraw.Values = append(uraw.Values, f.uVals[k]...)
		uraw.ColOffsets = append(uraw.ColOffsets, len(uraw.Values))
	}

	return e.adopt(lraw), e.adopt(uraw)
}

// adopt wraps raw factor storage as a solver-owned view.
func (e *Native[P]) adopt(raw matrix.CompColRaw[P]) *matrix.CompCol[P] {
	e.live.Add(1)
	v, err := matrix.CompColFromRaw(raw,
		matrix.WithNoValidateNaNInf(),
		matrix.WithSolverOwnership(func() { e.live.Add(-1) }),
	)
	if err != nil {
		panic(fmt.Sprintf("gssv: factor layout: %v", err))
	}

	return v
}
