// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Gemm computes
//
//	C := alpha * op(A) * op(B) + beta * C
//
// where op(X) is X, Xᵀ or Xᴴ according to the corresponding transpose
// argument. C must not alias A or B. When alpha is zero, A and B are not
// read; when beta is zero, C is not read.
func Gemm[T scalar.Scalar](tA, tB blas.Transpose, alpha T, a, b view.Matrix[T], beta T, c view.Matrix[T]) {
	switch tA {
	case blas.NoTrans:
	case blas.Trans, blas.ConjTrans:
		a = a.T()
	default:
		panic(badTranspose)
	}
	switch tB {
	case blas.NoTrans:
	case blas.Trans, blas.ConjTrans:
		b = b.T()
	default:
		panic(badTranspose)
	}
	m, k := a.Dims()
	k2, n := b.Dims()
	cm, cn := c.Dims()
	if k != k2 || cm != m || cn != n {
		panic(badShape)
	}

	var zero T
	if alpha == zero {
		scaleMatrix(beta, c)
		return
	}

	conjA := tA == blas.ConjTrans
	conjB := tB == blas.ConjTrans
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			switch {
			case !conjA && !conjB:
				for l := 0; l < k; l++ {
					sum += a.At(i, l) * b.At(l, j)
				}
			case conjA && !conjB:
				for l := 0; l < k; l++ {
					sum += scalar.Conj(a.At(i, l)) * b.At(l, j)
				}
			case !conjA && conjB:
				for l := 0; l < k; l++ {
					sum += a.At(i, l) * scalar.Conj(b.At(l, j))
				}
			default:
				for l := 0; l < k; l++ {
					sum += scalar.Conj(a.At(i, l) * b.At(l, j))
				}
			}
			if beta == zero {
				c.Set(i, j, alpha*sum)
			} else {
				c.Set(i, j, alpha*sum+beta*c.At(i, j))
			}
		}
	}
}

// scaleMatrix computes C := beta*C, writing zeros without reading when
// beta is zero.
func scaleMatrix[T scalar.Scalar](beta T, c view.Matrix[T]) {
	var zero T
	m, n := c.Dims()
	switch beta {
	case zero:
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				c.Set(i, j, zero)
			}
		}
	case scalar.FromReal[T](1):
	default:
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				c.Set(i, j, beta*c.At(i, j))
			}
		}
	}
}
