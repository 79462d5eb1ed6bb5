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

// Ungr2 generates the m×n matrix Q with orthonormal rows defined as the
// last m rows of the product of k = min(m, len(tau)) elementary
// reflectors of order n
//
//	Q = H(0)ᴴ * H(1)ᴴ * ... * H(k-1)ᴴ
//
// as returned by Gerq2 or Gerqf in the last k rows of q.
//
// On entry row m-k+i of q must contain the vector defining H(i), for
// i < k; on exit q is overwritten with Q. The leading m-k rows need not
// be set on entry; they are initialized to rows of the identity before
// the sweep. m <= n is required.
//
// work is scratch of length at least m-1; nil work causes an internal
// allocation.
func Ungr2[T scalar.Scalar](q view.Matrix[T], tau []T, work []T) {
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
		// Leading rows form an identity block anchored at column n-m.
		for j := 0; j < n; j++ {
			for l := 0; l < m-k; l++ {
				q.Set(l, j, zero)
			}
			if j >= n-m && j < n-k {
				q.Set(j-n+m, j, one)
			}
		}
	}

	for i := 0; i < k; i++ {
		ii := m - k + i // row holding reflector i
		jj := n - k + i // column of its unit element
		// The stored leading part is conj(v); restore reflector form
		// before applying and building the row.
		row := q.RowView(ii).Slice(0, jj)
		Lacgv(row)
		q.Set(ii, jj, one)
		if ii > 0 {
			// Apply H(i)ᴴ to Q[0:ii, 0:jj+1] from the right.
			Larf(blas.Right, q.RowView(ii).Slice(0, jj+1), scalar.Conj(tau[i]), q.Slice(0, ii, 0, jj+1), work)
		}
		gblas.Scal(-tau[i], row)
		Lacgv(row)
		q.Set(ii, jj, one-scalar.Conj(tau[i]))
		for l := jj + 1; l < n; l++ {
			q.Set(ii, l, zero)
		}
	}
}
