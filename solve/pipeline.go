// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"go.uber.org/multierr"
	"k8s.io/klog/v2"

	"github.com/johnrscott/csuperlu/gssv"
	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// ---------- variant tags ----------

const (
	tagSimple  = "SimpleSystem"
	tagPattern = "SamePattern"
	tagSimilar = "SimilarValues"
)

// SimpleSystem is a fresh solve: the engine computes the column ordering
// (policy from WithColumnPermPolicy, default ColAMD) and the row pivots.
type SimpleSystem[P scalar.Scalar] struct {
	A *matrix.CompCol[P]
	B *matrix.Dense[P]
}

// SamePattern reuses a column permutation from a system with the same
// sparsity pattern; the engine skips the column ordering.
type SamePattern[P scalar.Scalar] struct {
	A          *matrix.CompCol[P]
	B          *matrix.Dense[P]
	ColumnPerm matrix.Perm
}

// SimilarValues reuses both permutations from a system with similar
// values; the engine skips the ordering and prefers the given pivots.
type SimilarValues[P scalar.Scalar] struct {
	A          *matrix.CompCol[P]
	B          *matrix.Dense[P]
	ColumnPerm matrix.Perm
	RowPerm    matrix.Perm
}

// Solve factors A and solves A·X = B. B is consumed.
func (s SimpleSystem[P]) Solve(opts ...Option) (*Solution[P], error) {
	return run(call[P]{tag: tagSimple, a: s.A, b: s.B, colPerm: gssv.ColAMD, rowPerm: gssv.NoRowPerm}, opts)
}

// Solve factors A with the supplied column order and solves A·X = B.
// The hint must have A.NumCols() entries. B is consumed.
func (s SamePattern[P]) Solve(opts ...Option) (*Solution[P], error) {
	return run(call[P]{
		tag: tagPattern, a: s.A, b: s.B,
		colHint: s.ColumnPerm, colPerm: gssv.MyPermC, rowPerm: gssv.NoRowPerm,
	}, opts)
}

// Solve factors A with the supplied column order and row pivots and solves
// A·X = B. The hints must have A.NumCols() and A.NumRows() entries. B is
// consumed.
func (s SimilarValues[P]) Solve(opts ...Option) (*Solution[P], error) {
	return run(call[P]{
		tag: tagSimilar, a: s.A, b: s.B,
		colHint: s.ColumnPerm, rowHint: s.RowPerm, colPerm: gssv.MyPermC, rowPerm: gssv.MyPermR,
	}, opts)
}

// call is one variant's request.
type call[P scalar.Scalar] struct {
	tag              string
	a                *matrix.CompCol[P]
	b                *matrix.Dense[P]
	colHint, rowHint matrix.Perm
	colPerm          gssv.ColPerm
	rowPerm          gssv.RowPerm
}

// run is the pipeline shared by the three variants.
// Implementation:
//   - Stage 1: resolve options; validate A, B and the hint lengths.
//   - Stage 2: allocate the permutation buffers and copy the hints in.
//   - Stage 3: move B into the engine call.
//   - Stage 4: classify info and build the Solution or the typed error.
//
// Behavior highlights:
//   - Nothing is moved or allocated when validation fails; B stays usable.
//   - On any failure after the engine call, X and the factors are released,
//     except the partial factors carried by a *SingularError.
func run[P scalar.Scalar](c call[P], user []Option) (*Solution[P], error) {
	o, engine, err := gatherOptions[P](c.colPerm == gssv.MyPermC, user...)
	if err != nil {
		return nil, fmt.Errorf("solve.%s: %w", c.tag, err)
	}
	if err = matrix.ValidateRHS(c.a, c.b); err != nil {
		return nil, fmt.Errorf("solve.%s: %w", c.tag, err)
	}
	rows, cols := c.a.NumRows(), c.a.NumCols()
	if c.colPerm == gssv.MyPermC {
		if err = matrix.ValidateHint("ColumnPerm", c.colHint, cols); err != nil {
			return nil, fmt.Errorf("solve.%s: %w", c.tag, err)
		}
	}
	if c.rowPerm == gssv.MyPermR {
		if err = matrix.ValidateHint("RowPerm", c.rowHint, rows); err != nil {
			return nil, fmt.Errorf("solve.%s: %w", c.tag, err)
		}
	}

	permC := make(matrix.Perm, cols)
	permR := make(matrix.Perm, rows)
	copy(permC, c.colHint)
	copy(permR, c.rowHint)

	x, err := c.b.Move()
	if err != nil {
		return nil, fmt.Errorf("solve.%s: %w", c.tag, err)
	}
	stat := o.stat
	if stat == nil {
		stat = gssv.NewStat()
	}
	gopts := o.engineOptions(c.colPerm, c.rowPerm)

	l, u, info := engine.Gssv(&gopts, c.a, permC, permR, x, stat)
	out := Classify(info, cols)
	klog.V(4).InfoS("solve: engine returned", "variant", c.tag, "kind", scalar.KindOf[P](),
		"rows", rows, "cols", cols, "nnz", c.a.NNZ(), "nrhs", x.Cols(),
		"colPerm", gopts.ColPerm, "rowPerm", gopts.RowPerm, "info", info, "status", out.Status)

	switch out.Status {
	case Solved:
		lu, ferr := newFactors(l, u)
		if ferr != nil {
			return nil, fmt.Errorf("solve.%s: %w", c.tag, multierr.Combine(ferr, releaseAll(l, u, x)))
		}
		return &Solution[P]{A: c.a, X: x, ColumnPerm: permC, RowPerm: permR, LU: lu, Stat: stat}, nil

	case Singular:
		lu, ferr := newFactors(l, u)
		if ferr != nil {
			return nil, fmt.Errorf("solve.%s: %w", c.tag, multierr.Combine(ferr, releaseAll(l, u, x)))
		}
		var sing error = &SingularError[P]{
			Column: out.SingularColumn, ColumnPerm: permC, RowPerm: permR, LU: lu,
		}
		return nil, fmt.Errorf("solve.%s: %w", c.tag, multierr.Append(sing, x.Release()))

	default:
		return nil, fmt.Errorf("solve.%s: %w", c.tag, multierr.Combine(out.Err(), releaseAll(l, u, x)))
	}
}
