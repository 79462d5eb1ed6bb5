// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

func randomScalar[T scalar.Scalar](rnd *rand.Rand) T {
	if scalar.IsComplex[T]() {
		return scalar.FromParts[T](rnd.NormFloat64(), rnd.NormFloat64())
	}
	return scalar.FromReal[T](rnd.NormFloat64())
}

func randomGeneral[T scalar.Scalar](rnd *rand.Rand, m, n int) view.Matrix[T] {
	a := view.NewMatrix[T](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, randomScalar[T](rnd))
		}
	}
	return a
}

func cloneGeneral[T scalar.Scalar](a view.Matrix[T]) view.Matrix[T] {
	m, n := a.Dims()
	b := view.NewMatrix[T](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			b.Set(i, j, a.At(i, j))
		}
	}
	return b
}

// distFrob returns the Frobenius norm of a-b.
func distFrob[T scalar.Scalar](a, b view.Matrix[T]) float64 {
	m, n := a.Dims()
	d := view.NewMatrix[T](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, a.At(i, j)-b.At(i, j))
		}
	}
	return Lange(lapack.Frobenius, d)
}

// orthoResid returns the Frobenius norm of q*qᴴ - I for a matrix with
// nominally orthonormal rows.
func orthoResid[T scalar.Scalar](q view.Matrix[T]) float64 {
	m, _ := q.Dims()
	qq := view.NewMatrix[T](m, m)
	gblas.Gemm(blas.NoTrans, blas.ConjTrans, scalar.FromReal[T](1), q, q, scalar.FromReal[T](0), qq)
	one := scalar.FromReal[T](1)
	for i := 0; i < m; i++ {
		qq.Set(i, i, qq.At(i, i)-one)
	}
	return Lange(lapack.Frobenius, qq)
}
