// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Gelq2 computes the LQ factorization A = L * Q of the m×n matrix A
// using an unblocked algorithm.
//
// On exit the elements on and below the diagonal contain the m×min(m,n)
// lower trapezoidal matrix L (lower triangular if m <= n). The elements
// above the diagonal, together with tau, represent the unitary matrix Q
// as a product of min(m,n) elementary reflectors
//
//	Q = H(k-1)ᴴ * ... * H(1)ᴴ * H(0)ᴴ,   k = min(m, n),
//
// where H(i) = I - tau[i] * v * vᴴ with v[0:i] = 0, v[i] = 1 and
// v[i+1:n]ᴴ stored in A[i, i+1:n].
//
// tau must have length at least min(m,n). work is scratch of length at
// least m-1; nil work causes an internal allocation.
func Gelq2[T scalar.Scalar](a view.Matrix[T], tau []T, work []T) {
	m, n := a.Dims()
	k := min(m, n)
	if len(tau) < k {
		panic(shortTau)
	}
	if len(work) < m-1 {
		if work != nil {
			panic(shortWork)
		}
		work = make([]T, max(m-1, 0))
	}

	for i := 0; i < k; i++ {
		// Generate H(i) to annihilate A[i, i+1:n].
		row := a.RowView(i).Slice(i, n)
		Lacgv(row)
		beta, t := Larfg(row.At(0), row.Slice(1, n-i))
		tau[i] = t
		if i < m-1 {
			// Apply H(i) to A[i+1:m, i:n] from the right.
			row.Set(0, scalar.FromReal[T](1))
			Larf(blas.Right, row, t, a.Slice(i+1, m, i, n), work)
		}
		row.Set(0, beta)
		Lacgv(row.Slice(1, n-i))
	}
}
