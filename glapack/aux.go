// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Lacgv conjugates x in place. It is a no-op over the reals.
func Lacgv[T scalar.Scalar](x view.Vector[T]) {
	if !scalar.IsComplex[T]() {
		return
	}
	for i, n := 0, x.Len(); i < n; i++ {
		x.Set(i, scalar.Conj(x.At(i)))
	}
}

// Lacpy copies the triangle of A selected by uplo onto B: the upper
// triangle for blas.Upper, the lower triangle for blas.Lower, and all of
// A for blas.All. A and B must have the same shape.
func Lacpy[T scalar.Scalar](uplo blas.Uplo, a, b view.Matrix[T]) {
	m, n := a.Dims()
	bm, bn := b.Dims()
	if bm != m || bn != n {
		panic(badShape)
	}
	switch uplo {
	case blas.Upper:
		for i := 0; i < m; i++ {
			for j := i; j < n; j++ {
				b.Set(i, j, a.At(i, j))
			}
		}
	case blas.Lower:
		for i := 0; i < m; i++ {
			for j := 0; j <= min(i, n-1); j++ {
				b.Set(i, j, a.At(i, j))
			}
		}
	case blas.All:
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				b.Set(i, j, a.At(i, j))
			}
		}
	default:
		panic(badUplo)
	}
}

// ilalr returns the index of the last non-zero row of A, or -1 if A is
// entirely zero.
func ilalr[T scalar.Scalar](a view.Matrix[T]) int {
	var zero T
	m, n := a.Dims()
	for i := m - 1; i >= 0; i-- {
		for j := 0; j < n; j++ {
			if a.At(i, j) != zero {
				return i
			}
		}
	}
	return -1
}

// ilalc returns the index of the last non-zero column of A, or -1 if A
// is entirely zero.
func ilalc[T scalar.Scalar](a view.Matrix[T]) int {
	var zero T
	m, n := a.Dims()
	for j := n - 1; j >= 0; j-- {
		for i := 0; i < m; i++ {
			if a.At(i, j) != zero {
				return j
			}
		}
	}
	return -1
}

// ilav returns the index of the last non-zero element of v, or -1 if v
// is entirely zero.
func ilav[T scalar.Scalar](v view.Vector[T]) int {
	var zero T
	for i := v.Len() - 1; i >= 0; i-- {
		if v.At(i) != zero {
			return i
		}
	}
	return -1
}
