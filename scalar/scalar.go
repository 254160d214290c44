// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
)

// Scalar is the closed set of element types a solver engine can factor.
// The set is exact (no ~ approximation) so that type switches over any(v)
// are total.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Kind identifies the precision of an instantiation. A native binding uses
// it to pick the s/d/c/z entry point.
type Kind int

const (
	Single        Kind = iota // float32
	Double                    // float64
	ComplexSingle             // complex64
	ComplexDouble             // complex128
)

// String returns the conventional one-letter LAPACK prefix of the kind.
func (k Kind) String() string {
	switch k {
	case Single:
		return "s"
	case Double:
		return "d"
	case ComplexSingle:
		return "c"
	case ComplexDouble:
		return "z"
	default:
		return "?"
	}
}

// KindOf reports the Kind of the type parameter P.
// Complexity: O(1).
func KindOf[P Scalar]() Kind {
	var zero P
	switch any(zero).(type) {
	case float32:
		return Single
	case float64:
		return Double
	case complex64:
		return ComplexSingle
	default:
		return ComplexDouble
	}
}

// Size returns the storage size of one element of P in bytes.
func Size[P Scalar]() int {
	switch KindOf[P]() {
	case Single:
		return 4
	case Double, ComplexSingle:
		return 8
	default:
		return 16
	}
}

// Abs returns |v| as float64 (modulus for complex kinds).
// Complexity: O(1).
func Abs[P Scalar](v P) float64 {
	switch t := any(v).(type) {
	case float32:
		return math.Abs(float64(t))
	case float64:
		return math.Abs(t)
	case complex64:
		return cmplx.Abs(complex128(t))
	case complex128:
		return cmplx.Abs(t)
	}

	return 0 // unreachable: Scalar is a closed set
}

// IsZero reports whether v is the additive identity.
func IsZero[P Scalar](v P) bool { return v == 0 }

// One returns the multiplicative identity of P.
func One[P Scalar]() P { return P(1) }

// IsFinite reports whether v (both parts, for complex kinds) is neither NaN
// nor ±Inf.
func IsFinite[P Scalar](v P) bool {
	switch t := any(v).(type) {
	case float32:
		return finite(float64(t))
	case float64:
		return finite(t)
	case complex64:
		return finite(float64(real(t))) && finite(float64(imag(t)))
	case complex128:
		return finite(real(t)) && finite(imag(t))
	}

	return false
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
