// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/Xuan-1998/tlapack/gblas"
	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Ungl2 generates the m×n matrix Q with orthonormal rows defined as the
// first m rows of the product of k = min(m, len(tau)) elementary
// reflectors of order n
//
//	Q = H(k-1)ᴴ * ... * H(1)ᴴ * H(0)ᴴ
//
// as returned by Gelq2 or Gelqf in the first k rows of q.
//
// On entry row i of q must contain the vector defining H(i), for
// i < k; on exit q is overwritten with Q. Rows k through m-1 need not be
// set on entry; they are initialized to rows of the identity before the
// reverse sweep. m <= n is required.
//
// The sweep runs over reflectors in reverse construction order so that
// each step touches only the not-yet-finalized trailing block; the
// diagonal entry of reflector i is written as 1 - conj(tau[i]) and the
// row's leading elements are zeroed.
//
// work is scratch of length at least m-1; nil work causes an internal
// allocation.
func Ungl2[T scalar.Scalar](q view.Matrix[T], tau []T, work []T) {
	m, n := q.Dims()
	if m > n {
		panic(mGTN)
	}
	k := min(m, len(tau))
	if len(work) < m-1 {
		if work != nil {
			panic(shortWork)
		}
		work = make([]T, max(m-1, 0))
	}
	if m == 0 {
		return
	}

	one := scalar.FromReal[T](1)
	var zero T

	if k < m {
		// Rows beyond the supplied reflectors form an identity block.
		for j := 0; j < n; j++ {
			for l := k; l < m; l++ {
				q.Set(l, j, zero)
			}
			if j >= k && j < m {
				q.Set(j, j, one)
			}
		}
	}

	for i := k - 1; i >= 0; i-- {
		if i < n-1 {
			// The stored tail is conj(v); restore reflector form
			// before applying and building the row.
			row := q.RowView(i).Slice(i+1, n)
			Lacgv(row)
			if i < m-1 {
				// Apply H(i)ᴴ to Q[i+1:m, i:n] from the right.
				q.Set(i, i, one)
				Larf(blas.Right, q.RowView(i).Slice(i, n), scalar.Conj(tau[i]), q.Slice(i+1, m, i, n), work)
			}
			gblas.Scal(-tau[i], row)
			Lacgv(row)
		}
		q.Set(i, i, one-scalar.Conj(tau[i]))
		for l := 0; l < i; l++ {
			q.Set(i, l, zero)
		}
	}
}
