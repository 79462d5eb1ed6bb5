// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"math"

	"gonum.org/v1/gonum/lapack"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Lange returns the value of the matrix norm of A selected by norm:
// the largest absolute element (lapack.MaxAbs), the maximum absolute
// column sum (lapack.MaxColumnSum), the maximum absolute row sum
// (lapack.MaxRowSum) or the Frobenius norm (lapack.Frobenius).
//
// The norm of an empty matrix is zero.
func Lange[T scalar.Scalar](norm lapack.MatrixNorm, a view.Matrix[T]) float64 {
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return 0
	}
	switch norm {
	case lapack.MaxAbs:
		var value float64
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				value = math.Max(value, scalar.Abs(a.At(i, j)))
			}
		}
		return value
	case lapack.MaxColumnSum:
		var value float64
		for j := 0; j < n; j++ {
			var sum float64
			for i := 0; i < m; i++ {
				sum += scalar.Abs(a.At(i, j))
			}
			value = math.Max(value, sum)
		}
		return value
	case lapack.MaxRowSum:
		var value float64
		for i := 0; i < m; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				sum += scalar.Abs(a.At(i, j))
			}
			value = math.Max(value, sum)
		}
		return value
	case lapack.Frobenius:
		// Scaled sum of squares, as in Nrm2, to avoid overflow.
		var (
			scale float64
			ssq   = 1.0
		)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				v := scalar.Abs(a.At(i, j))
				if v == 0 {
					continue
				}
				if scale < v {
					ssq = 1 + ssq*(scale/v)*(scale/v)
					scale = v
				} else {
					ssq += (v / scale) * (v / scale)
				}
			}
		}
		return scale * math.Sqrt(ssq)
	default:
		panic(badNorm)
	}
}
