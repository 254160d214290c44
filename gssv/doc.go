// SPDX-License-Identifier: MIT

// Package gssv is the solver engine behind package solve: one call that
// orders, factors Pr·A·Pc = L·U and, when the factorization succeeded,
// overwrites B with the solution X.
//
// The call mirrors the native *gssv driver routines:
//
//	l, u, info := engine.Gssv(&opts, a, permC, permR, b, stat)
//
// and reports its result through the same integer info:
//
//	info < 0       argument -info is invalid (1 options, 2 A, 3 permC, 4 permR, 7 B)
//	info == 0      factored and solved
//	0 < info <= n  U(info-1, info-1) is exactly zero; factors returned, B untouched
//	info > n       workspace exhausted after info-n bytes
//
// Native is a pure-Go left-looking sparse LU (Gilbert–Peierls column
// elimination with threshold partial pivoting). Factors it returns are
// tagged matrix.SolverOwnsBuffers and must be released by the caller.
package gssv
