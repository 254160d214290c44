// Package csuperlu solves sparse linear systems A·X = B with a SuperLU-style
// left-looking LU factorization, and reuses orderings across related systems.
//
// 🚀 What is csuperlu?
//
//	A small, generic, pure-Go stack that brings together:
//		• Matrices: triplet (coordinate) builder, compressed-column, dense
//		• Orderings: Natural, MMD(AᵀA), MMD(Aᵀ+A), ColAMD + etree postorder
//		• Engine: gssv, partial pivoting with a diagonal threshold
//		• Pipeline: SimpleSystem → SamePattern → SimilarValues reuse
//		• Outcomes: Solved, Singular (with partial factors), OutOfMemory
//
// Every type is generic over float32, float64, complex64 and complex128.
//
// Under the hood, everything is organized under five subpackages:
//
//	scalar/   the four element precisions and their helpers
//	matrix/   Triplet, CompCol, Dense, Perm, gonum adapters, norms
//	ordering/ fill-reducing column orderings and the column etree
//	gssv/     the factor-and-solve engine, Options and Stat
//	solve/    the permutation-reuse pipeline and outcome classification
//
// Quick example:
//
//	a, _ := tr.ToCompCol()
//	sol, err := solve.SimpleSystem[float64]{A: a, B: b}.Solve()
//	// a2 has the sparsity pattern of a
//	next, err := solve.SamePattern[float64]{A: a2, B: b2, ColumnPerm: sol.ColumnPerm}.Solve()
//
// Tracing goes through klog: -v=4 logs every pipeline call, -v=5 the engine
// phases.
//
//	go get github.com/johnrscott/csuperlu
package csuperlu
