// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnrscott/csuperlu/matrix"
)

func TestPerm(t *testing.T) {
	require.True(t, matrix.IdentityPerm(4).IsIdentity())
	require.NoError(t, matrix.IdentityPerm(0).Validate(0))

	p := matrix.Perm{2, 0, 1}
	require.NoError(t, p.Validate(3))
	require.Equal(t, matrix.Perm{1, 2, 0}, p.Inverse())
	require.False(t, p.IsIdentity())

	c := p.Clone()
	c[0] = 9
	require.Equal(t, 2, p[0])

	require.ErrorIs(t, matrix.Perm{0, 0, 1}.Validate(3), matrix.ErrNotPermutation)
	require.ErrorIs(t, matrix.Perm{0, 3, 1}.Validate(3), matrix.ErrNotPermutation)
	require.ErrorIs(t, matrix.Perm{0, 1}.Validate(3), matrix.ErrNotPermutation)
}
