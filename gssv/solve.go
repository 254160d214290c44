// SPDX-License-Identifier: MIT

package gssv

import (
	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/scalar"
)

// solveInPlace overwrites every column of b with x = Pc·U⁻¹·L⁻¹·Pr·b and
// returns the flop count.
// Implementation:
//   - Stage 1: y[permR[i]] = b[i].
//   - Stage 2: forward substitution with unit L (diagonal stored first).
//   - Stage 3: back substitution with U (diagonal stored last).
//   - Stage 4: b[c] = y[permC[c]].
func solveInPlace[P scalar.Scalar](l, u *matrix.CompCol[P], permC, permR matrix.Perm, b *matrix.Dense[P]) float64 {
	n := l.NumCols()
	data := b.Data()
	y := make([]P, n)
	var k, i int
	var yk P
	for j := 0; j < b.Cols(); j++ {
		col := data[j*n : (j+1)*n]
		for i = range col {
			y[permR[i]] = col[i]
		}
		for k = 0; k < n; k++ {
			rows, vals := l.Column(k)
			if yk = y[k]; yk == 0 {
				continue
			}
			for i = 1; i < len(rows); i++ {
				y[rows[i]] -= vals[i] * yk
			}
		}
		for k = n - 1; k >= 0; k-- {
			rows, vals := u.Column(k)
			last := len(rows) - 1
			y[k] /= vals[last]
			if yk = y[k]; yk == 0 {
				continue
			}
			for i = 0; i < last; i++ {
				y[rows[i]] -= vals[i] * yk
			}
		}
		for i = range col {
			col[i] = y[permC[i]]
		}
	}

	return float64(b.Cols()) * (2*float64(l.NNZ()-n) + 2*float64(u.NNZ()-n) + float64(n))
}
