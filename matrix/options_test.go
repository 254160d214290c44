// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnrscott/csuperlu/matrix"
)

// TestGatherOptions_Defaults checks documented defaults and last-writer-wins.
func TestGatherOptions_Defaults(t *testing.T) {
	s := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultValidateNaNInf, s.ValidateNaNInf)
	require.False(t, s.SolverOwned)

	s = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, s.ValidateNaNInf) // last writer wins

	s = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithSolverOwnership(func() {}))
	require.True(t, s.SolverOwned)
}

// TestWithSolverOwnership_NilPanics: a nil hook is a programmer error.
func TestWithSolverOwnership_NilPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithSolverOwnership(nil) })
}
