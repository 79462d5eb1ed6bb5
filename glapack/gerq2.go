// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Gerq2 computes the RQ factorization A = R * Q of the m×n matrix A
// using an unblocked algorithm.
//
// On exit, if m <= n, the upper triangle of A[0:m, n-m:n] contains the
// m×m upper triangular matrix R; if m > n, the elements on and above the
// (m-n)-th subdiagonal contain the m×n upper trapezoidal matrix R. The
// remaining elements, together with tau, represent the unitary matrix Q
// as a product of k = min(m,n) elementary reflectors
//
//	Q = H(0)ᴴ * H(1)ᴴ * ... * H(k-1)ᴴ,
//
// where H(i) = I - tau[i] * v * vᴴ with v[n-k+i] = 1, v[n-k+i+1:n] = 0
// and v[0:n-k+i]ᴴ stored in A[m-k+i, 0:n-k+i].
//
// tau must have length at least min(m,n). work is scratch of length at
// least m-1; nil work causes an internal allocation.
func Gerq2[T scalar.Scalar](a view.Matrix[T], tau []T, work []T) {
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

	for i := k - 1; i >= 0; i-- {
		// Generate H(i) to annihilate A[m-k+i, 0:n-k+i], with the unit
		// element of the reflector at the row's trailing position.
		row := a.RowView(m - k + i).Slice(0, n-k+i+1)
		Lacgv(row)
		beta, t := Larfg(row.At(n-k+i), row.Slice(0, n-k+i))
		tau[i] = t
		if m-k+i > 0 {
			// Apply H(i) to A[0:m-k+i, 0:n-k+i+1] from the right.
			row.Set(n-k+i, scalar.FromReal[T](1))
			Larf(blas.Right, row, t, a.Slice(0, m-k+i, 0, n-k+i+1), work)
		}
		row.Set(n-k+i, beta)
		Lacgv(row.Slice(0, n-k+i))
	}
}
