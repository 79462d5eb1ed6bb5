// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"math/rand/v2"

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

func randomVector[T scalar.Scalar](rnd *rand.Rand, n int) view.Vector[T] {
	x := view.NewVector[T](n)
	for i := 0; i < n; i++ {
		x.Set(i, randomScalar[T](rnd))
	}
	return x
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

func cloneVector[T scalar.Scalar](x view.Vector[T]) view.Vector[T] {
	n := x.Len()
	y := view.NewVector[T](n)
	for i := 0; i < n; i++ {
		y.Set(i, x.At(i))
	}
	return y
}

// maxDiff returns the largest elementwise modulus of a-b.
func maxDiff[T scalar.Scalar](a, b view.Matrix[T]) float64 {
	m, n := a.Dims()
	var d float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			d = max(d, scalar.Abs(a.At(i, j)-b.At(i, j)))
		}
	}
	return d
}

// materialize returns op(a) as a fresh dense matrix, with op selected by
// conj and transpose flags.
func materialize[T scalar.Scalar](a view.Matrix[T], trans, conj bool) view.Matrix[T] {
	src := a
	if trans {
		src = a.T()
	}
	m, n := src.Dims()
	b := view.NewMatrix[T](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := src.At(i, j)
			if conj {
				v = scalar.Conj(v)
			}
			b.Set(i, j, v)
		}
	}
	return b
}

// naiveMul returns a*b computed by the definition, with no transpose or
// conjugation logic involved.
func naiveMul[T scalar.Scalar](a, b view.Matrix[T]) view.Matrix[T] {
	m, k := a.Dims()
	_, n := b.Dims()
	c := view.NewMatrix[T](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s T
			for l := 0; l < k; l++ {
				s += a.At(i, l) * b.At(l, j)
			}
			c.Set(i, j, s)
		}
	}
	return c
}
