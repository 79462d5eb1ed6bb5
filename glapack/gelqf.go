// Copyright ©2026 The tlapack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/Xuan-1998/tlapack/scalar"
	"github.com/Xuan-1998/tlapack/view"
)

// Gelqf computes the LQ factorization A = L * Q of the m×n matrix A
// using a blocked algorithm.
//
// The matrix is processed in panels of at most opts.BlockSize rows,
// sweeping from the top. Each panel is factorized in place by Gelq2;
// when a trailing submatrix remains below the panel, the panel's
// reflector product is summarized into a compact triangular factor
// (Larft) and applied to the trailing submatrix in one blocked update
// (Larfb) rather than one reflector at a time.
//
// The storage convention of A and tau on exit is that of Gelq2.
//
// Scratch is taken from opts.Work when it is at least
// GelqfWorkInfo(m, n, nb).Size() long, and allocated internally
// otherwise. A nil opts selects the defaults.
func Gelqf[T scalar.Scalar](a view.Matrix[T], tau []T, opts *LQOpts[T]) {
	m, n := a.Dims()
	k := min(m, n)
	if len(tau) < k {
		panic(shortTau)
	}
	if k == 0 {
		return
	}
	nb := min(opts.blockSize(), k)
	wi := lqWorkInfo(m, n, nb)
	work := opts.work(wi)

	for j := 0; j < k; j += nb {
		ib := min(nb, k-j)
		panel := a.Slice(j, j+ib, j, n)
		Gelq2(panel, tau[j:j+ib], work[:max(ib-1, 0)])

		if j+ib < m {
			// Form the triangular factor of the block reflector
			// H = H(j) H(j+1) ... H(j+ib-1) and apply it to the rows
			// below the panel. The scratch slice holds the (m-j-ib)×ib
			// update workspace followed by the nb×nb factor.
			t := view.MatrixFrom(work[wi.Size()-nb*nb:], ib, ib, nb)
			Larft(lapack.Forward, lapack.RowWise, panel, tau[j:j+ib], t)

			trailing := a.Slice(j+ib, m, j, n)
			w := view.MatrixFrom(work[:(m-j-ib)*ib], m-j-ib, ib, ib)
			Larfb(blas.Right, blas.NoTrans, lapack.Forward, lapack.RowWise, panel, t, trailing, w)
		}
	}
}
