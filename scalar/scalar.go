// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar defines the element types the generic kernels operate
// over and the field operations that differ between them.
//
// A single kernel body instantiated at float64 and at complex128 must
// agree on conjugation, real-part extraction and magnitude. The helpers
// here express those operations once; for a concrete instantiation the
// compiler resolves the type switch statically.
package scalar

import (
	"math"
	"math/cmplx"
)

// Scalar is the element type of all matrices and vectors in this module.
type Scalar interface {
	float64 | complex128
}

// Conj returns the complex conjugate of x. It is the identity over the
// reals.
func Conj[T Scalar](x T) T {
	switch v := any(x).(type) {
	case complex128:
		return any(cmplx.Conj(v)).(T)
	default:
		return x
	}
}

// Real returns the real part of x.
func Real[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case complex128:
		return real(v)
	default:
		return any(x).(float64)
	}
}

// Imag returns the imaginary part of x, zero over the reals.
func Imag[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case complex128:
		return imag(v)
	default:
		return 0
	}
}

// Abs returns the magnitude of x.
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case complex128:
		return cmplx.Abs(v)
	default:
		return math.Abs(any(x).(float64))
	}
}

// FromReal returns the scalar with real part r and zero imaginary part.
func FromReal[T Scalar](r float64) T {
	var t T
	switch any(t).(type) {
	case complex128:
		return any(complex(r, 0)).(T)
	default:
		return any(r).(T)
	}
}

// FromParts returns the scalar with real part re and imaginary part im.
// Over the reals the imaginary part is discarded; callers must only pass
// a nonzero im when it is mathematically zero for real instantiations.
func FromParts[T Scalar](re, im float64) T {
	var t T
	switch any(t).(type) {
	case complex128:
		return any(complex(re, im)).(T)
	default:
		return any(re).(T)
	}
}

// IsComplex reports whether T is a complex type.
func IsComplex[T Scalar]() bool {
	var t T
	_, ok := any(t).(complex128)
	return ok
}
