// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Gemv computes
//
//	y := alpha * op(A) * x + beta * y
//
// where op(A) is A, Aᵀ or Aᴴ according to trans. The length of x must
// equal the column count of op(A) and the length of y its row count.
// y must not alias A or x. When beta is zero, y is not read.
func Gemv[T scalar.Scalar](trans blas.Transpose, alpha T, a view.Matrix[T], x view.Vector[T], beta T, y view.Vector[T]) {
	switch trans {
	case blas.NoTrans:
	case blas.Trans, blas.ConjTrans:
		a = a.T()
	default:
		panic(badTranspose)
	}
	m, n := a.Dims()
	if x.Len() != n || y.Len() != m {
		panic(badLength)
	}
	var zero T
	conj := trans == blas.ConjTrans
	for i := 0; i < m; i++ {
		var sum T
		if conj {
			for j := 0; j < n; j++ {
				sum += scalar.Conj(a.At(i, j)) * x.At(j)
			}
		} else {
			for j := 0; j < n; j++ {
				sum += a.At(i, j) * x.At(j)
			}
		}
		if beta == zero {
			y.Set(i, alpha*sum)
		} else {
			y.Set(i, alpha*sum+beta*y.At(i))
		}
	}
}

// Gerc performs the rank-1 update
//
//	A += alpha * x * yᴴ
//
// The length of x must equal the row count of A and the length of y its
// column count.
func Gerc[T scalar.Scalar](alpha T, x, y view.Vector[T], a view.Matrix[T]) {
	m, n := a.Dims()
	if x.Len() != m || y.Len() != n {
		panic(badLength)
	}
	var zero T
	for i := 0; i < m; i++ {
		xi := alpha * x.At(i)
		if xi == zero {
			continue
		}
		for j := 0; j < n; j++ {
			a.Set(i, j, a.At(i, j)+xi*scalar.Conj(y.At(j)))
		}
	}
}
