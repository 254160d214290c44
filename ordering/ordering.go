// SPDX-License-Identifier: MIT

package ordering

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

var (
	// ErrUnknownMethod is returned for a Method outside the enum.
	ErrUnknownMethod = errors.New("ordering: unknown method")

	// ErrNotSquare is returned by MMDAtPlusA for a rectangular matrix.
	ErrNotSquare = errors.New("ordering: Aᵀ+A needs a square matrix")
)

// Method selects a column ordering.
type Method int

const (
	// Natural keeps the columns as they are.
	Natural Method = iota
	// MMDAtA runs minimum degree on the pattern of AᵀA.
	MMDAtA
	// MMDAtPlusA runs minimum degree on the pattern of Aᵀ+A.
	MMDAtPlusA
	// ColAMD orders columns by an approximate fill score.
	ColAMD
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Natural:
		return "Natural"
	case MMDAtA:
		return "MMD_AtA"
	case MMDAtPlusA:
		return "MMD_AtPlusA"
	case ColAMD:
		return "COLAMD"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ColumnPerm computes the column permutation of a for method m.
// Only the sparsity pattern of a is read.
//
// Errors:
//   - ErrUnknownMethod; ErrNotSquare (MMDAtPlusA); matrix.ErrNilMatrix.
func ColumnPerm[P scalar.Scalar](m Method, a *matrix.CompCol[P]) (matrix.Perm, error) {
	if a == nil {
		return nil, fmt.Errorf("ordering.ColumnPerm: %w", matrix.ErrNilMatrix)
	}
	n := a.NumCols()
	var order []int
	switch m {
	case Natural:
		return matrix.IdentityPerm(n), nil
	case MMDAtA:
		order = minimumDegree(columnGraph(a))
	case MMDAtPlusA:
		if a.NumRows() != n {
			return nil, fmt.Errorf("ordering.ColumnPerm(%s): %dx%d: %w", m, a.NumRows(), n, ErrNotSquare)
		}
		order = minimumDegree(symmetricGraph(a))
	case ColAMD:
		order = approximateColumnOrder(a)
	default:
		return nil, fmt.Errorf("ordering.ColumnPerm: %w: %d", ErrUnknownMethod, int(m))
	}

	return permFromOrder(order), nil
}

// permFromOrder turns an elimination order (order[k] = column eliminated at
// step k) into the solver's column perm (perm[column] = k).
func permFromOrder(order []int) matrix.Perm {
	perm := make(matrix.Perm, len(order))
	for k, col := range order {
		perm[col] = k
	}

	return perm
}

// newGraph returns an undirected graph with nodes 0..n-1 and no edges.
func newGraph(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	return g
}

// link adds the edge u–v unless it is a loop or already present.
func link(g *simple.UndirectedGraph, u, v int64) {
	if u == v || g.HasEdgeBetween(u, v) {
		return
	}
	g.SetEdge(g.NewEdge(g.Node(u), g.Node(v)))
}

// columnGraph builds the pattern of AᵀA: columns i and j are adjacent when
// some row holds an entry in both.
// Complexity: O(Σ_r cnt(r)²).
func columnGraph[P scalar.Scalar](a *matrix.CompCol[P]) *simple.UndirectedGraph {
	n := a.NumCols()
	byRow := make([][]int, a.NumRows())
	for c := 0; c < n; c++ {
		rows, _ := a.Column(c)
		for _, r := range rows {
			byRow[r] = append(byRow[r], c)
		}
	}
	g := newGraph(n)
	for _, cols := range byRow {
		for i := 0; i < len(cols); i++ {
			for j := i + 1; j < len(cols); j++ {
				link(g, int64(cols[i]), int64(cols[j]))
			}
		}
	}

	return g
}

// symmetricGraph builds the pattern of Aᵀ+A without the diagonal.
// Complexity: O(nnz).
func symmetricGraph[P scalar.Scalar](a *matrix.CompCol[P]) *simple.UndirectedGraph {
	g := newGraph(a.NumCols())
	for c := 0; c < a.NumCols(); c++ {
		rows, _ := a.Column(c)
		for _, r := range rows {
			link(g, int64(r), int64(c))
		}
	}

	return g
}

// neighbours returns the sorted adjacency of id.
func neighbours(g graph.Graph, id int64) []int64 {
	nodes := graph.NodesOf(g.From(id))
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	return ids
}

// minimumDegree runs multiple minimum degree on g and returns the
// elimination order.
// Implementation:
//   - Stage 1: find the minimum degree d among the remaining nodes.
//   - Stage 2: in ascending index order, eliminate every node of degree d
//     that is not adjacent to a node already eliminated in this pass (an
//     independent set, so their degrees are still exact).
//   - Stage 3: elimination turns the node's neighbourhood into a clique.
//
// Complexity: O(n · (n + fill)) in the worst case.
func minimumDegree(g *simple.UndirectedGraph) []int {
	n := g.Nodes().Len()
	order := make([]int, 0, n)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	var v int
	for len(order) < n {
		minDeg := n
		for v = 0; v < n; v++ {
			if alive[v] {
				minDeg = min(minDeg, g.From(int64(v)).Len())
			}
		}
		touched := make([]bool, n)
		for v = 0; v < n; v++ {
			if !alive[v] || touched[v] || g.From(int64(v)).Len() != minDeg {
				continue
			}
			nbrs := neighbours(g, int64(v))
			for i, u := range nbrs {
				touched[u] = true
				for _, w := range nbrs[i+1:] {
					link(g, u, w)
				}
			}
			g.RemoveNode(int64(v))
			alive[v] = false
			order = append(order, v)
		}
	}

	return order
}

// approximateColumnOrder scores column c by Σ_{r ∈ col c} (cnt(r) − 1), an
// upper bound on its degree in AᵀA, and orders columns by ascending score.
// Complexity: O(nnz + n log n).
func approximateColumnOrder[P scalar.Scalar](a *matrix.CompCol[P]) []int {
	n := a.NumCols()
	rowCount := make([]int, a.NumRows())
	for _, r := range a.RowIndices() {
		rowCount[r]++
	}
	score := make([]int, n)
	order := make([]int, n)
	for c := 0; c < n; c++ {
		order[c] = c
		rows, _ := a.Column(c)
		for _, r := range rows {
			score[c] += rowCount[r] - 1
		}
	}
	slices.SortStableFunc(order, func(x, y int) int { return score[x] - score[y] })

	return order
}
