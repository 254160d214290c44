// SPDX-License-Identifier: MIT

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnrscott/csuperlu/matrix"
	"github.com/johnrscott/csuperlu/ordering"
)

// TestColumnEtree_Arrow: every column shares row 0, so the tree is a path.
func TestColumnEtree_Arrow(t *testing.T) {
	parent, err := ordering.ColumnEtree(arrow(t, 4), matrix.IdentityPerm(4))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, parent)
}

// TestColumnEtree_Forest: uncoupled columns are all roots.
func TestColumnEtree_Forest(t *testing.T) {
	parent, err := ordering.ColumnEtree(scatter(t), matrix.IdentityPerm(4))
	require.NoError(t, err)
	require.Equal(t, []int{4, 4, 4, 4}, parent)

	_, err = ordering.ColumnEtree(scatter(t), matrix.Perm{0, 1})
	require.ErrorIs(t, err, matrix.ErrNotPermutation)
}

// TestPostorder visits children before parents, smallest child first.
func TestPostorder(t *testing.T) {
	// roots 1 and 4; 0 → 1, 2 → 3 → 4
	parent := []int{1, 5, 3, 4, 5}
	require.Equal(t, []int{0, 1, 2, 3, 4}, ordering.Postorder(parent))

	// 0 → 3 and 1, 2 roots: 1, 2, 0, 3
	require.Equal(t, []int{2, 0, 1, 3}, ordering.Postorder([]int{3, 4, 4, 4}))
}

// TestPostorderPerm keeps a permutation and is stable on a postordered input.
func TestPostorderPerm(t *testing.T) {
	a := arrow(t, 5)
	p, err := ordering.ColumnPerm(ordering.MMDAtPlusA, a)
	require.NoError(t, err)

	post, err := ordering.PostorderPerm(a, p)
	require.NoError(t, err)
	require.NoError(t, post.Validate(5))

	again, err := ordering.PostorderPerm(a, post)
	require.NoError(t, err)
	require.Equal(t, post, again)
}
