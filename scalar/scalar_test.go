// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/johnrscott/csuperlu/scalar"
	"github.com/stretchr/testify/require"
)

// TestKindOf verifies that every instantiation maps to its own Kind.
func TestKindOf(t *testing.T) {
	require.Equal(t, scalar.Single, scalar.KindOf[float32]())
	require.Equal(t, scalar.Double, scalar.KindOf[float64]())
	require.Equal(t, scalar.ComplexSingle, scalar.KindOf[complex64]())
	require.Equal(t, scalar.ComplexDouble, scalar.KindOf[complex128]())

	require.Equal(t, "d", scalar.Double.String())
	require.Equal(t, "z", scalar.ComplexDouble.String())
}

// TestSize checks element storage sizes.
func TestSize(t *testing.T) {
	require.Equal(t, 4, scalar.Size[float32]())
	require.Equal(t, 8, scalar.Size[float64]())
	require.Equal(t, 8, scalar.Size[complex64]())
	require.Equal(t, 16, scalar.Size[complex128]())
}

// TestAbs covers real and complex magnitudes.
func TestAbs(t *testing.T) {
	require.Equal(t, 2.5, scalar.Abs(float32(-2.5)))
	require.Equal(t, 3.0, scalar.Abs(-3.0))
	require.InDelta(t, 5.0, scalar.Abs(complex64(complex(3, -4))), 1e-6)
	require.InDelta(t, 5.0, scalar.Abs(complex(-3, 4)), 1e-12)
}

// TestZeroOneFinite covers the remaining helpers.
func TestZeroOneFinite(t *testing.T) {
	require.True(t, scalar.IsZero(0.0))
	require.False(t, scalar.IsZero(complex(0, 1e-300)))
	require.Equal(t, complex64(1), scalar.One[complex64]())

	require.True(t, scalar.IsFinite(1.0))
	require.False(t, scalar.IsFinite(math.Inf(1)))
	require.False(t, scalar.IsFinite(complex(1, math.NaN())))
	require.False(t, scalar.IsFinite(float32(math.NaN())))
}
