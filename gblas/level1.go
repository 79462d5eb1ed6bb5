// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"math"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Scal scales x by alpha in place.
func Scal[T scalar.Scalar](alpha T, x view.Vector[T]) {
	for i, n := 0, x.Len(); i < n; i++ {
		x.Set(i, alpha*x.At(i))
	}
}

// Axpy computes y += alpha*x. The lengths of x and y must match.
func Axpy[T scalar.Scalar](alpha T, x, y view.Vector[T]) {
	if x.Len() != y.Len() {
		panic(badLength)
	}
	var zero T
	if alpha == zero {
		return
	}
	for i, n := 0, x.Len(); i < n; i++ {
		y.Set(i, y.At(i)+alpha*x.At(i))
	}
}

// Dotc returns xᴴ·y, the conjugated dot product. The lengths of x and y
// must match.
func Dotc[T scalar.Scalar](x, y view.Vector[T]) T {
	if x.Len() != y.Len() {
		panic(badLength)
	}
	var sum T
	for i, n := 0, x.Len(); i < n; i++ {
		sum += scalar.Conj(x.At(i)) * y.At(i)
	}
	return sum
}

// Dotu returns xᵀ·y, the unconjugated dot product. The lengths of x and
// y must match.
func Dotu[T scalar.Scalar](x, y view.Vector[T]) T {
	if x.Len() != y.Len() {
		panic(badLength)
	}
	var sum T
	for i, n := 0, x.Len(); i < n; i++ {
		sum += x.At(i) * y.At(i)
	}
	return sum
}

// Nrm2 returns the Euclidean norm of x, computed with scaling to avoid
// overflow and underflow of intermediate squares.
func Nrm2[T scalar.Scalar](x view.Vector[T]) float64 {
	var (
		scale float64
		ssq   = 1.0
	)
	accum := func(a float64) {
		if a == 0 {
			return
		}
		a = math.Abs(a)
		if scale < a {
			ssq = 1 + ssq*(scale/a)*(scale/a)
			scale = a
		} else {
			ssq += (a / scale) * (a / scale)
		}
	}
	for i, n := 0, x.Len(); i < n; i++ {
		xi := x.At(i)
		accum(scalar.Real(xi))
		accum(scalar.Imag(xi))
	}
	return scale * math.Sqrt(ssq)
}

// Rot applies the plane rotation
//
//	[ x_i ]   [ c        s ] [ x_i ]
//	[ y_i ] = [ -conj(s) c ] [ y_i ]
//
// to the pair of vectors x and y in place. The lengths of x and y must
// match.
func Rot[T scalar.Scalar](x, y view.Vector[T], c float64, s T) {
	if x.Len() != y.Len() {
		panic(badLength)
	}
	cc := scalar.FromReal[T](c)
	cs := scalar.Conj(s)
	for i, n := 0, x.Len(); i < n; i++ {
		xi, yi := x.At(i), y.At(i)
		x.Set(i, cc*xi+s*yi)
		y.Set(i, cc*yi-cs*xi)
	}
}
